package service

import (
	"context"
	"fmt"
	"time"

	"hospital-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued token ids in redis. A token is valid only while its key exists,
// so deleting the key revokes it.
type TokenStore struct {
	redisClient *redis.Client
}

func NewTokenStore(redisClient *redis.Client) *TokenStore {
	return &TokenStore{redisClient: redisClient}
}

func tokenKey(tokenType jwt.TokenType, userID int, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}

// SavePair stores an access and refresh token id in one round trip.
func (s *TokenStore) SavePair(ctx context.Context, userID int, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, tokenKey(jwt.AccessToken, userID, accessID), "valid", accessTTL)
	pipe.Set(ctx, tokenKey(jwt.RefreshToken, userID, refreshID), "valid", refreshTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *TokenStore) IsActive(ctx context.Context, tokenType jwt.TokenType, userID int, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke deletes a single token and reports whether it was still active.
func (s *TokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID int, tokenID string) (bool, error) {
	n, err := s.redisClient.Del(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeAll drops every token issued to userID.
func (s *TokenStore) RevokeAll(ctx context.Context, userID int) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := fmt.Sprintf("%s_token:%d:*", tokenType, userID)
		iter := s.redisClient.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
