package hrevent_test

import (
	"testing"

	"github.com/Pavan812100/jml-hybrid/internal/hrevent"
	hreventerrors "github.com/Pavan812100/jml-hybrid/internal/hrevent/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    hrevent.EventType
		wantErr bool
	}{
		{name: "joiner", raw: "joiner", want: hrevent.EventTypeJoiner},
		{name: "mover", raw: "mover", want: hrevent.EventTypeMover},
		{name: "leaver", raw: "leaver", want: hrevent.EventTypeLeaver},
		{name: "mixed case with trailing space", raw: "LEAVER ", want: hrevent.EventTypeLeaver},
		{name: "surrounding whitespace", raw: "  Joiner\t", want: hrevent.EventTypeJoiner},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
		{name: "unknown type", raw: "rehire", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hrevent.ParseEventType(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, hreventerrors.ErrInvalidEventType)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
