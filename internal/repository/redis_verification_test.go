package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/nafees-s/tiket-api/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VerificationStoreTestSuite struct {
	suite.Suite
	redisClient *mocks.MockRedisClient
	store       *RedisVerificationStore
}

func (s *VerificationStoreTestSuite) SetupTest() {
	s.redisClient = new(mocks.MockRedisClient)
	s.store = NewRedisVerificationStore(s.redisClient)
}

func TestVerificationStoreSuite(t *testing.T) {
	suite.Run(t, new(VerificationStoreTestSuite))
}

func testVerification() domain.Verification {
	return domain.Verification{
		ID:     "f6a7e2b4",
		Phone:  "+919876543210",
		Code:   "482913",
		Expiry: time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC),
	}
}

func (s *VerificationStoreTestSuite) TestSet() {
	v := testVerification()
	payload, err := json.Marshal(v)
	s.Require().NoError(err)

	s.redisClient.On("SetNX", mock.Anything, "otp_cooldown:+919876543210", v.ID, time.Minute).
		Return(redis.NewBoolResult(true, nil))
	s.redisClient.On("Set", mock.Anything, "otp:f6a7e2b4", payload, 5*time.Minute).
		Return(redis.NewStatusResult("OK", nil))

	err = s.store.Set(context.Background(), v, 5*time.Minute, time.Minute)

	s.NoError(err)
	s.redisClient.AssertExpectations(s.T())
}

func (s *VerificationStoreTestSuite) TestSetThrottled() {
	v := testVerification()

	s.redisClient.On("SetNX", mock.Anything, "otp_cooldown:+919876543210", v.ID, time.Minute).
		Return(redis.NewBoolResult(false, nil))

	err := s.store.Set(context.Background(), v, 5*time.Minute, time.Minute)

	s.Require().ErrorIs(err, domain.ErrVerificationThrottled)
	s.redisClient.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VerificationStoreTestSuite) TestSetBackendError() {
	v := testVerification()

	s.redisClient.On("SetNX", mock.Anything, "otp_cooldown:+919876543210", v.ID, time.Minute).
		Return(redis.NewBoolResult(false, mocks.MockRedisError{Msg: "connection refused"}))

	err := s.store.Set(context.Background(), v, 5*time.Minute, time.Minute)

	s.Require().ErrorIs(err, mocks.MockRedisError{Msg: "connection refused"})
}

func (s *VerificationStoreTestSuite) TestGet() {
	v := testVerification()
	payload, err := json.Marshal(v)
	s.Require().NoError(err)

	tests := []struct {
		name       string
		getResult  *redis.StringCmd
		wantErr    error
		wantResult *domain.Verification
	}{
		{
			name:       "should return the pending verification",
			getResult:  redis.NewStringResult(string(payload), nil),
			wantResult: &v,
		},
		{
			name:      "should map a missing key to ErrVerificationExpired",
			getResult: redis.NewStringResult("", redis.Nil),
			wantErr:   domain.ErrVerificationExpired,
		},
		{
			name:      "should pass through backend errors",
			getResult: redis.NewStringResult("", mocks.MockRedisError{Msg: "connection refused"}),
			wantErr:   mocks.MockRedisError{Msg: "connection refused"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.redisClient.On("Get", mock.Anything, "otp:f6a7e2b4").Return(tt.getResult)

			got, err := s.store.Get(context.Background(), "f6a7e2b4")

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(tt.wantResult, got)
		})
	}
}

func (s *VerificationStoreTestSuite) TestDelete() {
	s.redisClient.On("Del", mock.Anything, []string{"otp:f6a7e2b4"}).
		Return(redis.NewIntResult(1, nil))

	err := s.store.Delete(context.Background(), "f6a7e2b4")

	s.NoError(err)
	s.redisClient.AssertExpectations(s.T())
}
