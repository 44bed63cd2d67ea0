package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// MovementCursor is the position of the last movement on a page. Movements are
// listed by (Date, RefID, Seq, MovementID).
type MovementCursor struct {
	Date       time.Time
	RefID      string
	Seq        int
	MovementID string
}

// After reports whether a movement at the given position sorts after the cursor.
func (c MovementCursor) After(date time.Time, refID string, seq int, movementID string) bool {
	if !date.Equal(c.Date) {
		return date.After(c.Date)
	}
	if refID != c.RefID {
		return refID > c.RefID
	}
	if seq != c.Seq {
		return seq > c.Seq
	}
	return movementID > c.MovementID
}

// EncodeMovementCursor creates an opaque next-page token.
func EncodeMovementCursor(c MovementCursor) string {
	return EncodeMultiFieldToken(c.Date.UTC().Format(timeFormat), c.RefID, strconv.Itoa(c.Seq), c.MovementID)
}

// DecodeMovementCursor parses a token produced by EncodeMovementCursor.
func DecodeMovementCursor(token string) (MovementCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return MovementCursor{}, err
	}
	if len(parts) != 4 {
		return MovementCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return MovementCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	refID := parts[1]
	if refID != "" {
		u, err := uuid.Parse(refID)
		if err != nil {
			return MovementCursor{}, fmt.Errorf("invalid pagination token format (ref id parse): %w", err)
		}
		refID = u.String()
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil {
		return MovementCursor{}, fmt.Errorf("invalid pagination token format (seq parse): %w", err)
	}
	movementID, err := uuid.Parse(parts[3])
	if err != nil {
		return MovementCursor{}, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return MovementCursor{Date: date, RefID: refID, Seq: seq, MovementID: movementID.String()}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	return strings.Split(string(decodedBytes), "|"), nil
}
