package domain

// Relationship discriminates the two agent variants
type Relationship string

const (
	RelationshipEmployee Relationship = "employee"
	RelationshipProvider Relationship = "provider"
)

// Agent is a staff member (employee) or an external supplier (provider)
// that can be assigned to activities. Loaded read-only per scheduling
// session from the directory service.
type Agent struct {
	ID           int64
	Name         string
	Relationship Relationship

	// CapableProductModelIDs is the skill/equipment whitelist
	// (employees only)
	CapableProductModelIDs []int64

	// ProviderProductModelIDs lists the product models this provider
	// is an eligible supplier for (providers only)
	ProviderProductModelIDs []int64
}

// IsEmployee returns true if the agent is a staff member
func (a *Agent) IsEmployee() bool {
	return a.Relationship == RelationshipEmployee
}

// IsProvider returns true if the agent is an external supplier
func (a *Agent) IsProvider() bool {
	return a.Relationship == RelationshipProvider
}

// CanPerform returns true if the employee's capability list includes
// the given product model. An empty list means no capabilities.
func (a *Agent) CanPerform(productModelID int64) bool {
	for _, id := range a.CapableProductModelIDs {
		if id == productModelID {
			return true
		}
	}
	return false
}

// CanSupply returns true if the provider is an eligible supplier for
// the given product model
func (a *Agent) CanSupply(productModelID int64) bool {
	for _, id := range a.ProviderProductModelIDs {
		if id == productModelID {
			return true
		}
	}
	return false
}
