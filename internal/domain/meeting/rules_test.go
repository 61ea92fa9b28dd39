//go:build unit

package meeting_test

import (
	"testing"

	"meetingsync/internal/domain/conflict"
	"meetingsync/internal/domain/meeting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoomRequirement(t *testing.T) {
	tests := []struct {
		name         string
		meetingType  meeting.Type
		hasRoom      bool
		wantConflict bool
		wantSeverity conflict.Severity
	}{
		{
			name:         "offline without room blocks submission",
			meetingType:  meeting.TypeOffline,
			hasRoom:      false,
			wantConflict: true,
			wantSeverity: conflict.SeverityError,
		},
		{
			name:        "offline with room",
			meetingType: meeting.TypeOffline,
			hasRoom:     true,
		},
		{
			name:         "hybrid without room warns but does not block",
			meetingType:  meeting.TypeHybrid,
			hasRoom:      false,
			wantConflict: true,
			wantSeverity: conflict.SeverityWarning,
		},
		{
			name:        "hybrid with room",
			meetingType: meeting.TypeHybrid,
			hasRoom:     true,
		},
		{
			name:        "online never needs a room",
			meetingType: meeting.TypeOnline,
			hasRoom:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := meeting.ValidateRoomRequirement(tt.meetingType, tt.hasRoom)
			if !tt.wantConflict {
				assert.Empty(t, conflicts)
				return
			}
			require.Len(t, conflicts, 1)
			assert.Equal(t, conflict.TypeMissingRoom, conflicts[0].Type)
			assert.Equal(t, tt.wantSeverity, conflicts[0].Severity)
			assert.NotEmpty(t, conflicts[0].Suggestions)
		})
	}
}

func TestParseType(t *testing.T) {
	t.Run("accepts known types case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]meeting.Type{
			"offline": meeting.TypeOffline,
			"HYBRID":  meeting.TypeHybrid,
			" online ": meeting.TypeOnline,
		} {
			got, err := meeting.ParseType(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := meeting.ParseType("townhall")
		assert.ErrorIs(t, err, meeting.ErrInvalidType)
	})
}

func TestTypeRequiresVideo(t *testing.T) {
	assert.False(t, meeting.TypeOffline.RequiresVideo())
	assert.True(t, meeting.TypeHybrid.RequiresVideo())
	assert.True(t, meeting.TypeOnline.RequiresVideo())
}
