// Package board keeps the session state the TUI and web server render: the
// fetched posts with the current search and page, and the task list with its
// status filter.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Joseda-hg/lazyboard/internal/model"
	"github.com/Joseda-hg/lazyboard/internal/query"
)

var ErrFetchInFlight = errors.New("a fetch is already in progress")

type PostFetcher interface {
	FetchPosts(ctx context.Context) ([]model.Post, error)
	FetchPost(ctx context.Context, id int64) (model.Post, error)
}

type Posts struct {
	mu      sync.RWMutex
	fetcher PostFetcher
	perPage int

	posts   []model.Post
	loaded  bool
	loading bool
	err     error

	query string
	page  int
}

type PostsSnapshot struct {
	Page    model.Page[model.Post]
	Window  []int
	Query   string
	Loaded  bool
	Loading bool
	Err     error
}

func NewPosts(fetcher PostFetcher, perPage int) (*Posts, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("posts per page must be positive, got %d", perPage)
	}
	return &Posts{fetcher: fetcher, perPage: perPage, page: 1}, nil
}

func (p *Posts) PerPage() int {
	return p.perPage
}

// Load fetches the collection once and replaces whatever was loaded before.
// A failure clears the posts and is kept for display until the next Load.
// If ctx is done before the fetch returns, the result is discarded and the
// previous state is left untouched.
func (p *Posts) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return ErrFetchInFlight
	}
	p.loading = true
	p.mu.Unlock()

	posts, err := p.fetcher.FetchPosts(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil && ctx.Err() != nil {
		return err
	}
	p.loaded = true
	if err != nil {
		p.posts = nil
		p.err = err
		return err
	}
	p.posts = posts
	p.err = nil
	p.page = 1
	return nil
}

// SetQuery changes the search and always returns to the first page.
func (p *Posts) SetQuery(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = q
	p.page = 1
}

func (p *Posts) SetPage(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = max(page, 1)
}

func (p *Posts) NextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	current := query.Paginate(query.SearchRecords(p.posts, p.query), p.page, p.perPage)
	if !current.HasNextPage {
		return false
	}
	p.page++
	return true
}

func (p *Posts) PrevPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.page <= 1 {
		return false
	}
	p.page--
	return true
}

func (p *Posts) Snapshot() PostsSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	page := query.Paginate(query.SearchRecords(p.posts, p.query), p.page, p.perPage)
	return PostsSnapshot{
		Page:    page,
		Window:  query.PageWindow(page.CurrentPage, page.TotalPages),
		Query:   p.query,
		Loaded:  p.loaded,
		Loading: p.loading,
		Err:     p.err,
	}
}

// View computes a page for an explicit query and page without touching the
// session's own search state. The web handlers use it per request.
func (p *Posts) View(q string, page int) (model.Page[model.Post], error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err != nil {
		return model.Page[model.Post]{}, p.err
	}
	return query.Paginate(query.SearchRecords(p.posts, q), page, p.perPage), nil
}

// Post returns a loaded post, falling back to a single remote fetch.
func (p *Posts) Post(ctx context.Context, id int64) (model.Post, error) {
	p.mu.RLock()
	for _, post := range p.posts {
		if post.ID == id {
			p.mu.RUnlock()
			return post, nil
		}
	}
	p.mu.RUnlock()
	return p.fetcher.FetchPost(ctx, id)
}
