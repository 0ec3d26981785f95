package casestudies

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items   map[string]CaseStudy
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]CaseStudy)}
}

func (f *fakeRepo) Create(_ context.Context, item CaseStudy) (CaseStudy, error) {
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, req UpdateRequest) (CaseStudy, error) {
	item, ok := f.items[id]
	if !ok {
		return CaseStudy{}, sql.ErrNoRows
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	f.deleted = append(f.deleted, id)
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

func (f *fakeRepo) ListPublished(_ context.Context) ([]CaseStudy, error) {
	out := make([]CaseStudy, 0)
	for _, item := range f.items {
		if item.IsPublished {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]CaseStudy, error) {
	out := make([]CaseStudy, 0)
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeRepo())

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:     "  Cloud cost reduction  ",
		Challenge: "spend",
		Solution:  "rightsizing",
		Outcome:   "forty percent saved",
	})
	require.NoError(t, err)
	require.Equal(t, "Cloud cost reduction", item.Title)
	require.False(t, item.IsPublished)
	require.Zero(t, item.DisplayOrder)
	require.Nil(t, item.Industry)
	_, err = uuid.Parse(item.ID)
	require.NoError(t, err)
}

func TestCreateKeepsExplicitFlags(t *testing.T) {
	svc := NewService(newFakeRepo())

	published := true
	order := 3
	item, err := svc.Create(context.Background(), CreateRequest{
		Title:        "Launch",
		Industry:     "Healthcare",
		Challenge:    "c",
		Solution:     "s",
		Outcome:      "o",
		Tags:         []string{"strategy"},
		IsPublished:  &published,
		DisplayOrder: &order,
	})
	require.NoError(t, err)
	require.True(t, item.IsPublished)
	require.Equal(t, 3, item.DisplayOrder)
	require.NotNil(t, item.Industry)
	require.Equal(t, "Healthcare", *item.Industry)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	title := "new title"
	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateRequest{Title: &title})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateMalformedIDIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	title := "new title"
	_, err := svc.Update(context.Background(), "not-a-uuid", UpdateRequest{Title: &title})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateRequest{
		Title: "Old", Challenge: "c", Solution: "s", Outcome: "o",
	})
	require.NoError(t, err)

	published := true
	updated, err := svc.Update(context.Background(), created.ID, UpdateRequest{IsPublished: &published})
	require.NoError(t, err)
	require.Equal(t, "Old", updated.Title)
	require.True(t, updated.IsPublished)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), uuid.NewString()))
}

func TestDeleteMalformedIDSkipsStore(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "not-a-uuid"))
	require.Empty(t, repo.deleted)
}
