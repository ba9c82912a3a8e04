// Package auth 管理员认证
// 登录成功后签发 HS256 令牌，令牌 ID 登记在会话存储中，退出时删除即失效
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ashwinyue/next-support/internal/config"
	"github.com/ashwinyue/next-support/internal/service/session"
)

var (
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken 令牌签名、格式或有效期不正确
	ErrInvalidToken = errors.New("invalid token")
	// ErrSessionNotFound 令牌对应的会话已退出或过期
	ErrSessionNotFound = session.ErrNotFound
)

const (
	defaultTTL = 24 * time.Hour
	issuer     = "next-support"
	subject    = "admin"
)

// Service 认证服务
type Service struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
	sessions session.Store
}

// NewService 创建认证服务
// 未配置密钥时每次启动随机生成，重启后旧令牌全部失效
func NewService(cfg *config.AdminConfig, sessions session.Store) (*Service, error) {
	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate token secret: %w", err)
		}
		secret = []byte(base64.StdEncoding.EncodeToString(buf))
	}

	ttl := time.Duration(cfg.SessionTTL) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Service{
		username: cfg.Username,
		password: cfg.Password,
		secret:   secret,
		ttl:      ttl,
		sessions: sessions,
	}, nil
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TTL 令牌有效期
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login 校验管理员账号，成功时返回令牌
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	id := uuid.New().String()
	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, id, s.ttl); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

// ValidateToken 校验令牌签名并确认会话仍然有效
func (s *Service) ValidateToken(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}

	if err := s.sessions.Check(ctx, claims.ID); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to check session: %w", err)
	}
	return nil
}

// Logout 注销令牌对应的会话
// 无效令牌直接忽略，退出总是成功
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Service) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithSubject(subject), jwt.WithExpirationRequired())
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
