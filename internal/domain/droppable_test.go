package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dropActivity() Activity {
	return Activity{
		ID:                     1,
		Name:                   "guided tour",
		ActivityDate:           time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TimeSlotCode:           "AM",
		HasStaffRequired:       true,
		RequiredProductModelID: 7,
		AgentID:                10,
	}
}

func employee(id int64, capable ...int64) Agent {
	return Agent{ID: id, Name: "employee", Relationship: RelationshipEmployee, CapableProductModelIDs: capable}
}

func provider(id int64, supplies ...int64) Agent {
	return Agent{ID: id, Name: "provider", Relationship: RelationshipProvider, ProviderProductModelIDs: supplies}
}

func TestEvaluateDrop(t *testing.T) {
	tests := []struct {
		name       string
		activity   func() Activity
		target     Agent
		dateKey    string
		slotCode   string
		cell       []Activity
		rules      DropRules
		wantAllow  bool
		wantSilent bool
		wantReason DropRejectReason
	}{
		{
			name:      "legal move to capable employee",
			activity:  dropActivity,
			target:    employee(20, 7),
			dateKey:   "2026-09-05",
			slotCode:  "AM",
			rules:     DropRules{SkillFilterEnabled: true},
			wantAllow: true,
		},
		{
			name: "partner event is silently rejected",
			activity: func() Activity {
				a := dropActivity()
				a.IsPartnerEvent = true
				return a
			},
			target:     employee(20, 7),
			dateKey:    "2026-09-05",
			slotCode:   "AM",
			wantSilent: true,
			wantReason: ReasonPartnerEvent,
		},
		{
			name:       "staff-required activity on provider",
			activity:   dropActivity,
			target:     provider(30, 7),
			dateKey:    "2026-09-05",
			slotCode:   "AM",
			wantReason: ReasonNeedsEmployee,
		},
		{
			name: "provider-required activity on employee",
			activity: func() Activity {
				a := dropActivity()
				a.HasStaffRequired = false
				a.HasProviderRequired = true
				return a
			},
			target:     employee(20, 7),
			dateKey:    "2026-09-05",
			slotCode:   "AM",
			wantReason: ReasonNeedsProvider,
		},
		{
			name:       "different day",
			activity:   dropActivity,
			target:     employee(20, 7),
			dateKey:    "2026-09-06",
			slotCode:   "AM",
			wantReason: ReasonIncompatibleSlot,
		},
		{
			name:       "different slot",
			activity:   dropActivity,
			target:     employee(20, 7),
			dateKey:    "2026-09-05",
			slotCode:   "PM",
			wantReason: ReasonIncompatibleSlot,
		},
		{
			name:       "skill mismatch with filter enabled",
			activity:   dropActivity,
			target:     employee(20, 8),
			dateKey:    "2026-09-05",
			slotCode:   "AM",
			rules:      DropRules{SkillFilterEnabled: true},
			wantReason: ReasonSkillMismatch,
		},
		{
			name:      "skill mismatch ignored with filter disabled",
			activity:  dropActivity,
			target:    employee(20, 8),
			dateKey:   "2026-09-05",
			slotCode:  "AM",
			rules:     DropRules{SkillFilterEnabled: false},
			wantAllow: true,
		},
		{
			name:     "duplicate in target cell",
			activity: dropActivity,
			target:   employee(20, 7),
			dateKey:  "2026-09-05",
			slotCode: "AM",
			cell: []Activity{
				{ID: 1, AgentID: 20},
			},
			wantSilent: true,
			wantReason: ReasonDuplicate,
		},
		{
			name: "exclusive activity into occupied cell",
			activity: func() Activity {
				a := dropActivity()
				a.IsExclusive = true
				return a
			},
			target:   employee(20, 7),
			dateKey:  "2026-09-05",
			slotCode: "AM",
			cell: []Activity{
				{ID: 5, AgentID: 20},
			},
			wantSilent: true,
			wantReason: ReasonExclusive,
		},
		{
			name:     "cell occupied by exclusive activity",
			activity: dropActivity,
			target:   employee(20, 7),
			dateKey:  "2026-09-05",
			slotCode: "AM",
			cell: []Activity{
				{ID: 5, AgentID: 20, IsExclusive: true},
			},
			wantSilent: true,
			wantReason: ReasonExclusive,
		},
		{
			name: "provider not eligible for product model",
			activity: func() Activity {
				a := dropActivity()
				a.HasStaffRequired = false
				a.HasProviderRequired = true
				return a
			},
			target:     provider(30, 8),
			dateKey:    "2026-09-05",
			slotCode:   "AM",
			wantReason: ReasonProviderNotEligible,
		},
		{
			name: "eligible provider",
			activity: func() Activity {
				a := dropActivity()
				a.HasStaffRequired = false
				a.HasProviderRequired = true
				return a
			},
			target:    provider(30, 7),
			dateKey:   "2026-09-05",
			slotCode:  "AM",
			wantAllow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluateDrop(tt.activity(), tt.target, tt.dateKey, tt.slotCode, tt.cell, tt.rules)

			assert.Equal(t, tt.wantAllow, verdict.Allowed)
			assert.Equal(t, tt.wantSilent, verdict.Silent)
			assert.Equal(t, tt.wantReason, verdict.Reason)
		})
	}
}

func TestEvaluateDrop_RoleCheckBeforeTemporalCheck(t *testing.T) {
	// Rules fire in order: a provider target with a wrong day still
	// reports the role mismatch first
	verdict := EvaluateDrop(dropActivity(), provider(30, 7), "2026-09-06", "PM", nil, DropRules{})

	assert.Equal(t, ReasonNeedsEmployee, verdict.Reason)
}

func TestEffectiveDropZone(t *testing.T) {
	regular := dropActivity()
	exclusive := dropActivity()
	exclusive.IsExclusive = true

	assert.Equal(t, DropZoneLeft, EffectiveDropZone(regular, DropZoneLeft))
	assert.Equal(t, DropZoneCenter, EffectiveDropZone(exclusive, DropZoneLeft))
	assert.Equal(t, DropZoneCenter, EffectiveDropZone(regular, DropZonePosition("bogus")))
}
