package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperror"
)

// fakeRepository is an in-memory author.Repository. A non-nil forcedErr
// makes every call fail, simulating a store outage.
type fakeRepository struct {
	byID       map[uuid.UUID]*author.Author
	lastFilter author.Filter
	forcedErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[uuid.UUID]*author.Author)}
}

func (f *fakeRepository) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	a.CreatedAt = time.Now().UTC()
	stored := *a
	f.byID[a.ID] = &stored
	return a, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepository) GetAll(_ context.Context, filter author.Filter) ([]author.Author, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.lastFilter = filter
	var authors []author.Author
	for _, a := range f.byID {
		authors = append(authors, *a)
	}
	return authors, nil
}

func (f *fakeRepository) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.byID[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	stored := *a
	f.byID[a.ID] = &stored
	return a, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.byID[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepository) FindIDsByName(_ context.Context, _ string) ([]uuid.UUID, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestAuthorService_Create(t *testing.T) {
	t.Run("assigns identity and persists", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAuthorService(repo)

		created, err := svc.Create(context.Background(), &author.CreateRequest{
			Name:     "Harper Lee",
			BornDate: strPtr("1926-04-28"),
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "Harper Lee", created.Name)
		require.NotNil(t, created.BornDate)
		assert.Equal(t, "1926-04-28", created.BornDate.Format(author.DateLayout))
		assert.Len(t, repo.byID, 1)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		svc := NewAuthorService(newFakeRepository())

		_, err := svc.Create(context.Background(), &author.CreateRequest{Name: ""})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := NewAuthorService(newFakeRepository())

		_, err := svc.Create(context.Background(), &author.CreateRequest{
			Name:     "Harper Lee",
			BornDate: strPtr("April 1926"),
		})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("maps store failure to unavailable", func(t *testing.T) {
		repo := newFakeRepository()
		repo.forcedErr = errors.New("connection refused")
		svc := NewAuthorService(repo)

		_, err := svc.Create(context.Background(), &author.CreateRequest{Name: "Harper Lee"})
		require.Error(t, err)
		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeUnavailable, appErr.Code)
	})
}

func TestAuthorService_GetAll(t *testing.T) {
	t.Run("applies the default limit", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAuthorService(repo)

		_, err := svc.GetAll(context.Background(), author.Filter{})
		require.NoError(t, err)
		assert.Equal(t, DefaultLimit, repo.lastFilter.Limit)
		assert.Equal(t, 0, repo.lastFilter.Offset)
	})

	t.Run("keeps an explicit limit", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAuthorService(repo)

		_, err := svc.GetAll(context.Background(), author.Filter{Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, repo.lastFilter.Limit)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		svc := NewAuthorService(newFakeRepository())

		_, err := svc.GetAll(context.Background(), author.Filter{Offset: -1})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestAuthorService_Update(t *testing.T) {
	seed := func(t *testing.T) (*fakeRepository, author.Service, uuid.UUID) {
		t.Helper()
		repo := newFakeRepository()
		svc := NewAuthorService(repo)
		created, err := svc.Create(context.Background(), &author.CreateRequest{
			Name:      "Harper Lee",
			Biography: strPtr("American novelist"),
			BornDate:  strPtr("1926-04-28"),
		})
		require.NoError(t, err)
		return repo, svc, created.ID
	}

	t.Run("partial update leaves other fields intact", func(t *testing.T) {
		_, svc, id := seed(t)

		updated, err := svc.Update(context.Background(), id, &author.UpdateRequest{
			Name: strPtr("Nelle Harper Lee"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Nelle Harper Lee", updated.Name)
		require.NotNil(t, updated.Biography)
		assert.Equal(t, "American novelist", *updated.Biography)
		require.NotNil(t, updated.BornDate)
		assert.Equal(t, "1926-04-28", updated.BornDate.Format(author.DateLayout))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, svc, _ := seed(t)

		_, err := svc.Update(context.Background(), uuid.New(), &author.UpdateRequest{
			Name: strPtr("Nobody"),
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, svc, id := seed(t)

		_, err := svc.Update(context.Background(), id, &author.UpdateRequest{
			BornDate: strPtr("28/04/1926"),
		})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestAuthorService_Delete(t *testing.T) {
	t.Run("removes an existing author", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAuthorService(repo)
		created, err := svc.Create(context.Background(), &author.CreateRequest{Name: "Harper Lee"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID))
		assert.Empty(t, repo.byID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := NewAuthorService(newFakeRepository())

		err := svc.Delete(context.Background(), uuid.New())
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}
