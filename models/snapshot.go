package models

import (
	"github.com/google/uuid"
)

// Resource names one of the four datasets the dashboard loads
type Resource string

const (
	ResourceGreeting Resource = "greeting"
	ResourcePricing  Resource = "pricing"
	ResourceDemand   Resource = "demand"
	ResourceSupply   Resource = "supply"
)

// Resources lists every resource in dispatch order
var Resources = []Resource{ResourceGreeting, ResourcePricing, ResourceDemand, ResourceSupply}

// SlotState tracks a slot through its single transition per mount
type SlotState string

const (
	SlotUnset     SlotState = "unset"
	SlotPopulated SlotState = "populated"
	SlotEmpty     SlotState = "empty"
)

// SlotUpdate is the outcome of loading one resource. Only the field matching
// Resource is meaningful; an empty update carries the resource's default.
type SlotUpdate struct {
	Resource Resource
	State    SlotState
	Greeting string
	Pricing  []PricingEntry
	Demand   []DemandEntry
	Supply   []SupplyEntry
}

func GreetingLoaded(greeting Greeting) SlotUpdate {
	return SlotUpdate{Resource: ResourceGreeting, State: SlotPopulated, Greeting: greeting.Message}
}

func PricingLoaded(entries []PricingEntry) SlotUpdate {
	return SlotUpdate{Resource: ResourcePricing, State: SlotPopulated, Pricing: entries}
}

func DemandLoaded(entries []DemandEntry) SlotUpdate {
	return SlotUpdate{Resource: ResourceDemand, State: SlotPopulated, Demand: entries}
}

func SupplyLoaded(entries []SupplyEntry) SlotUpdate {
	return SlotUpdate{Resource: ResourceSupply, State: SlotPopulated, Supply: entries}
}

// Unavailable is the update for a resource whose fetch failed
func Unavailable(resource Resource) SlotUpdate {
	return SlotUpdate{Resource: resource, State: SlotEmpty}
}

// Snapshot is the dashboard view state for one mount
type Snapshot struct {
	MountID  uuid.UUID              `json:"mount_id"`
	Greeting string                 `json:"greeting"`
	Pricing  []PricingEntry         `json:"pricing"`
	Demand   []DemandEntry          `json:"demand"`
	Supply   []SupplyEntry          `json:"supply"`
	States   map[Resource]SlotState `json:"states"`
}

// NewSnapshot returns a snapshot with every slot unset
func NewSnapshot() *Snapshot {
	states := make(map[Resource]SlotState, len(Resources))
	for _, resource := range Resources {
		states[resource] = SlotUnset
	}

	return &Snapshot{
		MountID: uuid.New(),
		Pricing: []PricingEntry{},
		Demand:  []DemandEntry{},
		Supply:  []SupplyEntry{},
		States:  states,
	}
}

// State returns the current state of a slot
func (s *Snapshot) State(resource Resource) SlotState {
	if state, ok := s.States[resource]; ok {
		return state
	}
	return SlotUnset
}

// Apply writes an update into its slot. A slot is written at most once; updates
// for settled slots, unknown resources or without a final state are ignored.
func (s *Snapshot) Apply(update SlotUpdate) bool {
	if update.State != SlotPopulated && update.State != SlotEmpty {
		return false
	}
	current, known := s.States[update.Resource]
	if !known || current != SlotUnset {
		return false
	}

	switch update.Resource {
	case ResourceGreeting:
		s.Greeting = update.Greeting
	case ResourcePricing:
		s.Pricing = nonNil(update.Pricing)
	case ResourceDemand:
		s.Demand = nonNil(update.Demand)
	case ResourceSupply:
		s.Supply = nonNil(update.Supply)
	}

	if update.State == SlotEmpty {
		s.clear(update.Resource)
	}

	s.States[update.Resource] = update.State
	return true
}

// Settled reports whether every slot has left the unset state
func (s *Snapshot) Settled() bool {
	for _, resource := range Resources {
		if s.State(resource) == SlotUnset {
			return false
		}
	}
	return true
}

func (s *Snapshot) clear(resource Resource) {
	switch resource {
	case ResourceGreeting:
		s.Greeting = ""
	case ResourcePricing:
		s.Pricing = []PricingEntry{}
	case ResourceDemand:
		s.Demand = []DemandEntry{}
	case ResourceSupply:
		s.Supply = []SupplyEntry{}
	}
}

func nonNil[T any](entries []T) []T {
	if entries == nil {
		return []T{}
	}
	return entries
}
