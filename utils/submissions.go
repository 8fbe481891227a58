package utils

import (
	"context"
	"fmt"

	"famcal/models"
)

func (s *PGStore) SaveFeedback(ctx context.Context, fb models.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.Exec(ctx, "INSERT INTO feedback (email, message) VALUES ($1, $2)", blankToNil(fb.Email), fb.Message)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (s *PGStore) SaveEarlyAccess(ctx context.Context, ea models.EarlyAccess) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.Exec(ctx, "INSERT INTO early_access (email, user_agent) VALUES ($1, $2)", ea.Email, blankToNil(ea.UserAgent))
	if err != nil {
		return fmt.Errorf("insert early access signup: %w", err)
	}
	return nil
}
