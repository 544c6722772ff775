package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/validation"
)

type userRecord struct {
	user entity.User
	seq  int
}

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	if err := validation.Struct(u); err != nil {
		return repository.ErrInvalidDocument
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[u.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	u.ID = newID()
	r.s.users[u.ID] = userRecord{user: *u, seq: len(r.s.users)}
	r.s.emails[u.Email] = u.ID
	return nil
}

func (r *UserRepository) get(id string) (entity.User, error) {
	if err := checkID(id); err != nil {
		return entity.User{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[id]
	if !ok {
		return entity.User{}, repository.ErrNotFound
	}
	return rec.user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, err := r.get(id)
	if err != nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

func (r *UserRepository) GetOwn(_ context.Context, id string) (*entity.User, error) {
	u, err := r.get(id)
	if err != nil {
		return nil, err
	}
	own := u.Own()
	return &own, nil
}

func (r *UserRepository) GetCredentials(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.s.users[id].user
	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.s.mu.RLock()
	recs := make([]userRecord, 0, len(r.s.users))
	for _, rec := range r.s.users {
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]entity.User, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.user.Public())
	}
	return out, nil
}

func (r *UserRepository) update(id string, mutate func(u *entity.User)) (*entity.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next := rec.user
	mutate(&next)
	if err := validation.Struct(next); err != nil {
		return nil, repository.ErrInvalidDocument
	}
	rec.user = next
	r.s.users[id] = rec
	own := next.Own()
	return &own, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id, name, about string) (*entity.User, error) {
	return r.update(id, func(u *entity.User) {
		u.Name = name
		u.About = about
	})
}

func (r *UserRepository) UpdateAvatar(_ context.Context, id, avatar string) (*entity.User, error) {
	return r.update(id, func(u *entity.User) {
		u.Avatar = avatar
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)
