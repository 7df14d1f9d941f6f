package author

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	nextID  uint
	authors map[uint]*Author
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, authors: map[uint]*Author{}}
}

func (r *memRepo) List(context.Context) ([]*Author, error) {
	list := make([]*Author, 0, len(r.authors))
	for id := uint(1); id < r.nextID; id++ {
		if a, ok := r.authors[id]; ok {
			list = append(list, a)
		}
	}
	return list, nil
}

func (r *memRepo) FindByID(_ context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memRepo) Create(_ context.Context, a *Author) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *memRepo) Update(_ context.Context, a *Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.authors[id]; !ok {
		return false, nil
	}
	delete(r.authors, id)
	return true, nil
}

func TestService(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)
	born := time.Date(1947, 9, 21, 0, 0, 0, 0, time.UTC)

	t.Run("新增作者回填ID", func(t *testing.T) {
		a, err := svc.AddAuthor(ctx, "Stephen", "King", born)
		require.NoError(t, err)
		assert.Equal(t, uint(1), a.ID)
		assert.Equal(t, "Stephen King", a.FullName())
		require.NotNil(t, a.Birthdate)
		assert.True(t, a.Birthdate.Equal(born))
	})

	t.Run("修改作者", func(t *testing.T) {
		newBorn := born.AddDate(0, 0, 1)
		a, err := svc.EditAuthor(ctx, 1, "Richard", "Bachman", newBorn)
		require.NoError(t, err)
		assert.Equal(t, "Richard Bachman", a.FullName())

		stored, err := svc.GetAuthor(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Bachman", stored.LastName)
		assert.True(t, stored.Birthdate.Equal(newBorn))
	})

	t.Run("修改不存在的作者", func(t *testing.T) {
		_, err := svc.EditAuthor(ctx, 42, "a", "b", born)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("删除作者", func(t *testing.T) {
		removed, err := svc.RemoveAuthor(ctx, 1)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.RemoveAuthor(ctx, 1)
		require.NoError(t, err)
		assert.False(t, removed)

		list, err := svc.ListAuthors(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
