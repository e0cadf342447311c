package service

import (
	"context"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
	"github.com/Ihsas01/SR-SHOPPING/pkg/utils"
	"github.com/rs/zerolog/log"
)

type AdminServiceImpl struct {
	store     *state.Store
	config    config.Config
	signToken func(name, email, secret string) (string, error)
}

func CreateNewAdminService(store *state.Store, config config.Config) AdminService {
	return &AdminServiceImpl{store: store, config: config, signToken: utils.CreateJWTToken}
}

// issueToken signs a token for the admin that was just logged in. When
// signing fails the session is ended again.
func (s *AdminServiceImpl) issueToken(ctx context.Context, admin domain.Admin) (resp dto.AuthResponse, err error) {
	token, err := s.signToken(admin.Name, admin.Email, s.config.JWTSecret)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "issueToken").Msg("")
		if logoutErr := s.store.Logout(ctx); logoutErr != nil {
			log.Ctx(ctx).Error().Err(logoutErr).Str("component", "issueToken").Msg("")
		}
		return resp, err
	}

	resp.Token = token
	resp.Admin = dto.NewAdminResponse(admin)

	return resp, nil
}

func (s *AdminServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (resp dto.AuthResponse, err error) {
	admin, err := s.store.Login(ctx, strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		log.Ctx(ctx).Info().Str("component", "Login").Str("email", payload.Email).Msg("rejected")
		return resp, err
	}

	return s.issueToken(ctx, admin)
}

func (s *AdminServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	admin := domain.Admin{
		Name:     strings.TrimSpace(payload.Name),
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: strings.TrimSpace(payload.Password),
		Phone:    strings.TrimSpace(payload.Phone),
	}
	if admin.Name == "" || admin.Email == "" || admin.Password == "" {
		return resp, errs.ErrMissingAdminFields
	}

	if err = s.store.RegisterAdmin(ctx, admin); err != nil {
		return resp, err
	}

	return s.issueToken(ctx, admin)
}

func (s *AdminServiceImpl) Logout(ctx context.Context) error {
	return s.store.Logout(ctx)
}

func (s *AdminServiceImpl) GetSession(ctx context.Context) (resp dto.SessionResponse) {
	snap := s.store.Snapshot()

	resp.Status = snap.Status()
	if snap.Session != nil {
		admin := dto.NewAdminResponse(*snap.Session)
		resp.Admin = &admin
	}

	return resp
}

func (s *AdminServiceImpl) GetAdmins(ctx context.Context) []dto.AdminResponse {
	snap := s.store.Snapshot()

	data := make([]dto.AdminResponse, 0, len(snap.Admins))
	for _, a := range snap.Admins {
		data = append(data, dto.NewAdminResponse(a))
	}

	return data
}

func (s *AdminServiceImpl) DeleteAdmin(ctx context.Context, email string) error {
	_, err := s.store.DeleteAdmin(ctx, email)
	return err
}

func (s *AdminServiceImpl) Authorize(ctx context.Context, email string) error {
	session := s.store.Snapshot().Session
	if email == "" || session == nil || !session.HasEmail(email) {
		return errs.ErrNotLoggedIn
	}

	return nil
}
