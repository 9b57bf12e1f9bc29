package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/items", 1, 20, 0},
		{"explicit", "/items?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "/items?limit=5", 1, 5, 0},
		{"capped", "/items?per_page=9999", 1, 100, 0},
		{"bad page falls back", "/items?page=abc", 1, 20, 0},
		{"zero page clamps", "/items?page=0", 1, 20, 0},
		{"negative per_page falls back", "/items?per_page=-4", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolveOn(t, tt.target, 20, 100)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	meta := BuildPagination(p, 35, 10)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, int64(35), meta.Total)

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
	assert.Equal(t, 5, last.Count)

	empty := BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
