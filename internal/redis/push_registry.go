package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

// PushRegistry keeps the subscribed mobile clients in one Redis hash:
// field = client id, value = client type. Registration survives restarts of
// the API process.
type PushRegistry struct {
	client *goredis.Client
	key    string
}

func NewPushRegistry(r *Redis) *PushRegistry {
	return &PushRegistry{
		client: r.Client,
		key:    "push:clients",
	}
}

func (p *PushRegistry) Register(ctx context.Context, reg domain.PushRegistration) error {
	return p.client.HSet(ctx, p.key, reg.ID, string(reg.Type)).Err()
}

func (p *PushRegistry) Unregister(ctx context.Context, id string) error {
	return p.client.HDel(ctx, p.key, id).Err()
}

func (p *PushRegistry) List(ctx context.Context) ([]domain.PushRegistration, error) {
	entries, err := p.client.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, err
	}

	regs := make([]domain.PushRegistration, 0, len(entries))
	for id, typ := range entries {
		regs = append(regs, domain.PushRegistration{ID: id, Type: domain.ClientType(typ)})
	}
	return regs, nil
}
