// Package components defines the ECS components for the simulation.
//
// Every agent is an entity carrying exactly a Position and a Tribe. Agents
// are never added or removed once a run starts; conversion only rewrites
// Tribe.Kind in place.
package components
