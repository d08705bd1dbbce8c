package user

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/jwt"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const DefaultSweepSpec = "@every 1m"

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, sessionID string) error
		Me(ctx context.Context, sessionID string) (domain.UserResponse, error)
		GetSessionUser(ctx context.Context, sessionID string) (entities.User, error)
		StartSessionSweeper(spec string) (stop func(), err error)
	}

	session struct {
		user      entities.User
		expiresAt time.Time
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		passwordHash   []byte
		latency        time.Duration
		now            func() time.Time

		mu       sync.RWMutex
		sessions map[string]session
	}
)

// NewUserService keeps only a bcrypt hash of the shared demo password.
func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, demoPassword string, latency time.Duration) UserService {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("user: hashing demo password failed, logins disabled", zap.Error(err))
	}

	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		passwordHash:   hash,
		latency:        latency,
		now:            time.Now,
		sessions:       make(map[string]session),
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return domain.LoginResponse{}, err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if len(s.passwordHash) == 0 || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if req.Role != "" && req.Role != user.Role {
		return domain.LoginResponse{}, domain.ErrRoleMismatch
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := s.jwtService.GenerateTokenUser(user.ID, user.Role, sessionID)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	s.mu.Lock()
	s.sessions[sessionID] = session{user: *user, expiresAt: expiresAt}
	s.mu.Unlock()

	zap.L().Info("user: session started",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
		zap.String("session_id", sessionID),
	)

	return domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      ToUserResponse(*user),
	}, nil
}

func (s *userService) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *userService) Me(ctx context.Context, sessionID string) (domain.UserResponse, error) {
	user, err := s.GetSessionUser(ctx, sessionID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return ToUserResponse(user), nil
}

func (s *userService) GetSessionUser(ctx context.Context, sessionID string) (entities.User, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || !s.now().Before(sess.expiresAt) {
		return entities.User{}, domain.ErrSessionNotFound
	}
	return sess.user, nil
}

func (s *userService) StartSessionSweeper(spec string) (func(), error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}

	sched := cron.New()
	if _, err := sched.AddFunc(spec, s.sweepExpiredSessions); err != nil {
		return nil, err
	}
	sched.Start()

	return func() {
		<-sched.Stop().Done()
	}, nil
}

func (s *userService) sweepExpiredSessions() {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		zap.L().Debug("user: expired sessions removed", zap.Int("count", removed))
	}
}

func ToUserResponse(u entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// simulateLatency stands in for a network round trip. It only returns early when ctx ends.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
