package id3v23

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// Popularimeter ratings. Everything in between is a matter of taste.
const (
	RatingUnknown = 0
	RatingWorst   = 1
	RatingBest    = 255
)

var errPOPMNoEmailTerm = errors.New("POPM email not null-terminated")

// PopularimeterBody is the payload of POPM frames.
//
//	[null-terminated]     email of the user, ISO-8859-1
//	[1 byte]              rating
//	[4+ bytes, optional]  play counter
type PopularimeterBody struct {
	email   string
	rating  byte
	counter uint64

	// counterWidth is the on-disk width of the counter, 0 when absent.
	counterWidth int
}

func (b *PopularimeterBody) Email() string     { return b.email }
func (b *PopularimeterBody) SetEmail(s string) { b.email = s }
func (b *PopularimeterBody) Rating() int       { return int(b.rating) }
func (b *PopularimeterBody) Counter() uint64   { return b.counter }

// SetCounter sets the play counter, widening its encoding when needed.
func (b *PopularimeterBody) SetCounter(n uint64) {
	b.counter = n
	b.widen()
}

// SetRating sets the rating. Values outside 0-255 are rejected and leave
// the body unchanged.
func (b *PopularimeterBody) SetRating(r int) error {
	if r < RatingUnknown || r > RatingBest {
		return &types.InvalidArgumentError{
			Field:  "rating",
			Value:  r,
			Reason: fmt.Sprintf("must be between %d and %d", RatingUnknown, RatingBest),
		}
	}
	b.rating = byte(r)
	return nil
}

// widen grows counterWidth until it can hold counter.
func (b *PopularimeterBody) widen() {
	if b.counterWidth < 4 {
		b.counterWidth = 4
	}
	for b.counterWidth < 8 && b.counter>>(8*uint(b.counterWidth)) != 0 {
		b.counterWidth++
	}
}

func (b *PopularimeterBody) Decode(data []byte) error {
	email, rest, ok := splitTerminated(data, EncodingISO88591)
	if !ok {
		return errPOPMNoEmailTerm
	}
	if len(rest) < 1 {
		return errBodyTooShort
	}
	s, err := EncodingISO88591.decode(email)
	if err != nil {
		return err
	}

	counterBytes := rest[1:]
	if n := len(counterBytes); n != 0 && n < 4 {
		return fmt.Errorf("POPM counter is %d bytes, need at least 4", n)
	}
	if len(counterBytes) > 8 {
		return fmt.Errorf("POPM counter is %d bytes, at most 8 supported", len(counterBytes))
	}
	var counter uint64
	for _, c := range counterBytes {
		counter = counter<<8 | uint64(c)
	}

	b.email = s
	b.rating = rest[0]
	b.counter = counter
	b.counterWidth = len(counterBytes)
	return nil
}

func (b *PopularimeterBody) Encode(sw *binutil.SafeWriter) error {
	email, err := encodeTerminated(b.email, EncodingISO88591)
	if err != nil {
		return err
	}
	if err := sw.WriteBytes(email); err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, b.rating); err != nil {
		return err
	}
	counter := make([]byte, b.counterWidth)
	for i, v := len(counter)-1, b.counter; i >= 0; i, v = i-1, v>>8 {
		counter[i] = byte(v)
	}
	return sw.WriteBytes(counter)
}

func (b *PopularimeterBody) Size() int { return encodedSize(b) }

func (b *PopularimeterBody) String() string {
	return fmt.Sprintf("%s rating %d, played %d", b.email, b.rating, b.counter)
}
