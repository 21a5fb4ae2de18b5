package ports

import "context"

type AdvertiserRepo interface {
	List(ctx context.Context) ([]*Advertiser, error)
	GetByID(ctx context.Context, id int64) (*Advertiser, error)
	Create(ctx context.Context, a *Advertiser) (*Advertiser, error)
	Update(ctx context.Context, a *Advertiser) error
	Delete(ctx context.Context, id int64) error
}
