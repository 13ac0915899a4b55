package store

import (
	"autoluxe/internal/models"
	"autoluxe/internal/utils"
)

// Vehicles returns the full vehicles table. An absent table is seeded with
// the showcase inventory and persisted before returning; a corrupt table
// falls back to the seed list without persisting it.
func (s *Store) Vehicles() []models.Vehicle {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loadVehicles()
}

func (s *Store) loadVehicles() []models.Vehicle {
	_, exists, err := s.backend.Get(vehiclesKey)
	if err == nil && !exists {
		seed := SeedVehicles()
		if err := s.writeJSON(vehiclesKey, seed); err != nil {
			s.logger.WithError(err).Warn("failed to persist seed inventory")
		}
		return seed
	}

	var vehicles []models.Vehicle
	if !s.readJSON(vehiclesKey, &vehicles) {
		return SeedVehicles()
	}
	return vehicles
}

// Vehicle looks up a single record by id.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	for _, v := range s.Vehicles() {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// SaveVehicle upserts a record: a missing id is generated, an existing record
// is shallow-merged with the incoming one, otherwise the record is appended.
func (s *Store) SaveVehicle(vehicle models.Vehicle) (models.Vehicle, error) {
	s.mutex.Lock()
	vehicles := s.loadVehicles()

	if vehicle.ID == "" {
		vehicle.ID = utils.GenerateID()
	}

	found := false
	for i, existing := range vehicles {
		if existing.ID == vehicle.ID {
			vehicles[i] = existing.Merge(vehicle)
			vehicle = vehicles[i]
			found = true
			break
		}
	}
	if !found {
		vehicles = append(vehicles, vehicle)
	}

	err := s.writeJSON(vehiclesKey, vehicles)
	s.mutex.Unlock()
	if err != nil {
		return vehicle, err
	}

	s.events.Publish(Event{Channel: ChannelInventory})
	return vehicle, nil
}

// DeleteVehicle removes a record. Deleting the last record leaves an empty
// table, which is never re-seeded.
func (s *Store) DeleteVehicle(id string) error {
	s.mutex.Lock()
	vehicles := s.loadVehicles()

	remaining := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID != id {
			remaining = append(remaining, v)
		}
	}

	err := s.writeJSON(vehiclesKey, remaining)
	s.mutex.Unlock()
	if err != nil {
		return err
	}

	s.events.Publish(Event{Channel: ChannelInventory})
	return nil
}
