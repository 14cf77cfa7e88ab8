package commands

import (
	"context"
	"log/slog"

	"vps-rental/internal/domain/user"
	reqdto "vps-rental/internal/handler/dto/request"
	"vps-rental/internal/infra"
	"vps-rental/internal/pkg/clock"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/pkg/jwt"
	"vps-rental/internal/pkg/password"
)

type LoginResult struct {
	Token   string
	IsStaff bool
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
	recorder LoginRecorder
	clk      clock.Clock
}

func NewAuthCommands(
	userRepo UserRepository,
	jwtSvc *jwt.Service,
	recorder LoginRecorder,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		recorder: recorder,
		clk:      clk,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snap, hash, err := c.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// 存在しないユーザも不正パスワードも同じ応答にする
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role := user.RoleFromFlags(snap.IsStaff, snap.IsSuperuser)
	token, err := c.jwtSvc.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}

	// Login history is best-effort; a Redis outage must not block sign-in.
	if err := c.recorder.Record(ctx, snap.Username, c.clk.Now()); err != nil {
		slog.WarnContext(ctx, "failed to record login event",
			slog.String("username", snap.Username),
			slog.String("error", err.Error()),
		)
	}

	return &LoginResult{
		Token:   token,
		IsStaff: role.IsModerator(),
	}, nil
}
