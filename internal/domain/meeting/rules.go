package meeting

import (
	"fmt"

	"meetingsync/internal/domain/conflict"
)

// roomRule describes what a meeting type expects of the room field. Kept as a
// table so adding a meeting type is a data change, not new control flow.
type roomRule struct {
	requiresRoom    bool
	missingSeverity conflict.Severity
	suggestion      string
}

var roomRules = map[Type]roomRule{
	TypeOffline: {
		requiresRoom:    true,
		missingSeverity: conflict.SeverityError,
		suggestion:      "Select a room, or switch to an online meeting",
	},
	TypeHybrid: {
		requiresRoom:    true,
		missingSeverity: conflict.SeverityWarning,
		suggestion:      "Select a room for on-site participants, or switch to an online meeting",
	},
	TypeOnline: {requiresRoom: false},
}

// ValidateRoomRequirement applies the per-type room rules. Pure function of
// the type and room presence, no I/O, so the orchestrator can run it before
// any resource lookups.
func ValidateRoomRequirement(mt Type, hasRoom bool) []conflict.Info {
	rule, ok := roomRules[mt]
	if !ok || !rule.requiresRoom || hasRoom {
		return nil
	}
	return []conflict.Info{{
		Type:     conflict.TypeMissingRoom,
		Severity: rule.missingSeverity,
		Message:  fmt.Sprintf("A %s meeting requires a room", mt),
		Suggestions: []string{rule.suggestion},
	}}
}
