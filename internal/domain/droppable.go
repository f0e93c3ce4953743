package domain

// DropRules is the configuration the droppability check runs under
type DropRules struct {
	// SkillFilterEnabled turns rule 3 (employee capability matching) on
	SkillFilterEnabled bool
}

// DropRejectReason identifies the first rule that rejected a move
type DropRejectReason string

const (
	ReasonNone                DropRejectReason = ""
	ReasonPartnerEvent        DropRejectReason = "partner_event"
	ReasonNeedsEmployee       DropRejectReason = "needs_employee"
	ReasonNeedsProvider       DropRejectReason = "needs_provider"
	ReasonIncompatibleSlot    DropRejectReason = "incompatible_slot"
	ReasonSkillMismatch       DropRejectReason = "skill_mismatch"
	ReasonDuplicate           DropRejectReason = "duplicate"
	ReasonExclusive           DropRejectReason = "exclusive"
	ReasonProviderNotEligible DropRejectReason = "provider_not_eligible"
)

// Verdict is the outcome of a droppability check. Silent rejections are
// reflected only by the absence of the drop-highlight affordance; voiced
// ones carry a user-facing reason.
type Verdict struct {
	Allowed bool
	Silent  bool
	Reason  DropRejectReason
}

func allowed() Verdict {
	return Verdict{Allowed: true}
}

func rejected(reason DropRejectReason) Verdict {
	return Verdict{Reason: reason}
}

func rejectedSilently(reason DropRejectReason) Verdict {
	return Verdict{Silent: true, Reason: reason}
}

// EvaluateDrop decides whether moving the activity into the target agent's
// (day, slot) cell is legal. Pure and side-effect free; rules are checked
// in order and the first failing rule rejects the move.
func EvaluateDrop(
	activity Activity,
	target Agent,
	targetDateKey string,
	targetSlotCode string,
	targetCell []Activity,
	rules DropRules,
) Verdict {
	// Partner events are calendar markers, never draggable between agents
	if activity.IsPartnerEvent {
		return rejectedSilently(ReasonPartnerEvent)
	}

	// 1. Role match
	if activity.HasStaffRequired && !target.IsEmployee() {
		return rejected(ReasonNeedsEmployee)
	}
	if activity.HasProviderRequired && !target.IsProvider() {
		return rejected(ReasonNeedsProvider)
	}

	// 2. Temporal match: same day, same slot, only the agent changes
	if targetDateKey != activity.DateKey() || targetSlotCode != activity.TimeSlotCode {
		return rejected(ReasonIncompatibleSlot)
	}

	// 3. Skill match (employees, when enabled)
	if rules.SkillFilterEnabled && target.IsEmployee() &&
		activity.RequiredProductModelID != 0 && !target.CanPerform(activity.RequiredProductModelID) {
		return rejected(ReasonSkillMismatch)
	}

	// 4. No duplicate
	for _, occupant := range targetCell {
		if occupant.ID == activity.ID {
			return rejectedSilently(ReasonDuplicate)
		}
	}

	// 5. Exclusivity, both directions
	if activity.IsExclusive && len(targetCell) > 0 {
		return rejectedSilently(ReasonExclusive)
	}
	for _, occupant := range targetCell {
		if occupant.IsExclusive {
			return rejectedSilently(ReasonExclusive)
		}
	}

	// 6. Providers must be eligible suppliers of the required product model
	if target.IsProvider() && !target.CanSupply(activity.RequiredProductModelID) {
		return rejected(ReasonProviderNotEligible)
	}

	return allowed()
}

// EffectiveDropZone normalizes the requested insertion hint: exclusive
// activities are forced to center, an unknown hint defaults to center
func EffectiveDropZone(activity Activity, requested DropZonePosition) DropZonePosition {
	if activity.IsExclusive || !ValidDropZonePosition(requested) {
		return DropZoneCenter
	}
	return requested
}
