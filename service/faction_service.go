package service

import (
	"context"
	"encoding/json"
	"faction-api/logger"
	"faction-api/model"
	"faction-api/store"

	"github.com/sirupsen/logrus"
)

const (
	membersCollection  = "membrifactiune"
	accountsCollection = "jucatoriacc"
	leaveCollection    = "invoire"
	codesCollection    = "Codes"
	statsCollection    = "stuff"
)

// FactionService is a thin pass-through to the faction sub-trees of the
// document store. It never interprets the documents it moves; access
// control happens in the middleware, not here.
type FactionService struct {
	store store.Store
}

func NewFactionService(s store.Store) *FactionService {
	return &FactionService{store: s}
}

func (s *FactionService) Members(ctx context.Context) (map[string]json.RawMessage, error) {
	return s.store.List(ctx, membersCollection)
}

// UpdateMemberRank merges the new rank into the member document, leaving
// its other fields untouched.
func (s *FactionService) UpdateMemberRank(ctx context.Context, memberID string, newRank int) error {
	logger.Log.WithFields(logrus.Fields{
		"member_id": memberID,
		"new_rank":  newRank,
	}).Info("Updating faction member rank")

	return s.store.Update(ctx, membersCollection+"/"+memberID, map[string]interface{}{
		"rank": newRank,
	})
}

func (s *FactionService) PlayerAccounts(ctx context.Context) (map[string]json.RawMessage, error) {
	return s.store.List(ctx, accountsCollection)
}

func (s *FactionService) CreateLeaveRequest(ctx context.Context, req model.LeaveRequest) error {
	return s.store.Set(ctx, leaveCollection+"/"+req.DiscordID, map[string]interface{}{
		"Id":        req.DiscordID,
		"StartDate": req.StartDate,
		"EndDate":   req.EndDate,
	})
}

func (s *FactionService) GetLeaveRequest(ctx context.Context, discordID string) (json.RawMessage, bool, error) {
	return s.store.Get(ctx, leaveCollection+"/"+discordID)
}

func (s *FactionService) AddCode(ctx context.Context, code string) error {
	return s.store.Set(ctx, codesCollection+"/"+code, map[string]interface{}{"Code": code})
}

func (s *FactionService) CodeExists(ctx context.Context, code string) (bool, error) {
	_, found, err := s.store.Get(ctx, codesCollection+"/"+code)
	return found, err
}

func (s *FactionService) DeleteCode(ctx context.Context, code string) error {
	return s.store.Delete(ctx, codesCollection+"/"+code)
}

func (s *FactionService) Statistics(ctx context.Context) (map[string]json.RawMessage, error) {
	return s.store.List(ctx, statsCollection)
}

// Version reads the deployed data version from stuff/Version.
func (s *FactionService) Version(ctx context.Context) (json.RawMessage, bool, error) {
	return s.store.Get(ctx, statsCollection+"/Version")
}
