package attempt

import (
	"context"
	"sync"
)

type FakeRepository struct {
	Created []Attempt
	Err     error
	lock    sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, attempt Attempt) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Created = append(r.Created, attempt)
	return nil
}

func (r *FakeRepository) Last() Attempt {
	r.lock.Lock()
	defer r.lock.Unlock()
	l := len(r.Created)
	if l == 0 {
		panic("no attempts recorded")
	}
	return r.Created[l-1]
}
