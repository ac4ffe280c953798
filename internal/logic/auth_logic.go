package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthLogic 管理员认证业务逻辑
type AuthLogic struct {
	db  *gorm.DB
	cfg config.JWTConfig
}

// NewAuthLogic 创建管理员认证业务逻辑
func NewAuthLogic(db *gorm.DB, cfg config.JWTConfig) *AuthLogic {
	return &AuthLogic{db: db, cfg: cfg}
}

// AdminClaims 管理员会话JWT声明
type AdminClaims struct {
	AdminId  string `json:"adminId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Login 校验管理员凭据,成功则签发会话令牌
func (a *AuthLogic) Login(username, password string) (string, *model.AdminModel, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var admin model.AdminModel
	if err := a.db.First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("查询管理员账户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.issueToken(&admin)
	if err != nil {
		return "", nil, fmt.Errorf("签发会话令牌失败: %w", err)
	}
	return token, &admin, nil
}

// issueToken 签发HS256会话令牌
func (a *AuthLogic) issueToken(admin *model.AdminModel) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminId:  admin.Id,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(a.cfg.ExpireHours) * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.Secret))
}

// ParseToken 解析并校验会话令牌
func ParseToken(tokenString, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
