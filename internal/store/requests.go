package store

import (
	"errors"
	"fmt"
	"time"

	"autoluxe/internal/models"
	"autoluxe/internal/utils"
)

var (
	ErrRequestNotFound  = errors.New("exchange request not found")
	ErrRequestFinalized = errors.New("exchange request already finalized")
)

func (s *Store) loadRequests() []models.ExchangeRequest {
	var requests []models.ExchangeRequest
	s.readJSON(requestsKey, &requests)
	return requests
}

// ExchangeRequests returns the trade-in table, newest first.
func (s *Store) ExchangeRequests() []models.ExchangeRequest {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loadRequests()
}

// CreateExchangeRequest assigns id, creation date and the initial pending
// status, then prepends the record so listings stay most-recent-first.
func (s *Store) CreateExchangeRequest(request models.ExchangeRequest) (models.ExchangeRequest, error) {
	request.ID = utils.GenerateID()
	request.Date = time.Now()
	request.Status = models.RequestStatusPending

	s.mutex.Lock()
	requests := append([]models.ExchangeRequest{request}, s.loadRequests()...)
	err := s.writeJSON(requestsKey, requests)
	s.mutex.Unlock()
	if err != nil {
		return request, err
	}

	s.events.Publish(Event{Channel: ChannelRequests})
	return request, nil
}

// UpdateRequestStatus moves a pending request to approved or rejected.
// Approved and rejected are terminal: re-transitioning is refused.
func (s *Store) UpdateRequestStatus(id string, status models.RequestStatus) error {
	if status != models.RequestStatusApproved && status != models.RequestStatusRejected {
		return fmt.Errorf("invalid target status %q", status)
	}

	s.mutex.Lock()
	requests := s.loadRequests()
	index := -1
	for i, r := range requests {
		if r.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mutex.Unlock()
		return ErrRequestNotFound
	}
	if requests[index].Status != models.RequestStatusPending {
		s.mutex.Unlock()
		return ErrRequestFinalized
	}

	requests[index].Status = status
	err := s.writeJSON(requestsKey, requests)
	s.mutex.Unlock()
	if err != nil {
		return err
	}

	s.events.Publish(Event{Channel: ChannelRequests})
	return nil
}
