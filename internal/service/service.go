package service

import (
	"context"

	"github.com/grandmixture/profile-card/config"
	"github.com/grandmixture/profile-card/internal/entity"
	"github.com/grandmixture/profile-card/internal/pkg/fetcher"
	"github.com/grandmixture/profile-card/internal/pkg/kafka"
	"github.com/grandmixture/profile-card/internal/pkg/pool"
)

// RenderOptions are the per-request rendering knobs.
type RenderOptions struct {
	WeaponSize       int
	RemoveBackground bool
}

type ProfileService interface {
	RenderProfileCard(ctx context.Context, uid, region string, opts RenderOptions) ([]byte, error)
	CharacterInfo(ctx context.Context, uid, region string) (*entity.CharacterInfoResponse, error)
}

type profileService struct {
	fetcher  fetcher.Fetcher
	pool     *pool.Pool
	producer kafka.Producer
	upstream config.UpstreamConfig
	topic    string
}

func NewProfileService(f fetcher.Fetcher, p *pool.Pool, producer kafka.Producer, upstream config.UpstreamConfig, topic string) ProfileService {
	return &profileService{
		fetcher:  f,
		pool:     p,
		producer: producer,
		upstream: upstream,
		topic:    topic,
	}
}
