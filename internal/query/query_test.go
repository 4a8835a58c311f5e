package query

import (
	"reflect"
	"testing"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

func TestSearchRecordsBlankQueryReturnsInput(t *testing.T) {
	posts := samplePosts(3)
	for _, q := range []string{"", "   ", "\t"} {
		got := SearchRecords(posts, q)
		if len(got) != len(posts) {
			t.Fatalf("query %q: expected %d posts, got %d", q, len(posts), len(got))
		}
		if &got[0] != &posts[0] {
			t.Fatalf("query %q: expected the input slice to be returned", q)
		}
	}
}

func TestSearchRecordsMatchesTitleOrBodyIgnoringCase(t *testing.T) {
	posts := []model.Post{
		{ID: 1, Title: "Hello", Body: "first"},
		{ID: 2, Title: "Other", Body: "say HELLO again"},
		{ID: 3, Title: "Nothing", Body: "here"},
	}

	got := SearchRecords(posts, "hello")
	if ids := postIDs(got); !reflect.DeepEqual(ids, []int64{1, 2}) {
		t.Fatalf("expected ids [1 2], got %v", ids)
	}

	if got := SearchRecords(posts, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", postIDs(got))
	}
}

func TestSearchRecordsIsIdempotent(t *testing.T) {
	posts := []model.Post{
		{ID: 1, Title: "alpha beta", Body: ""},
		{ID: 2, Title: "gamma", Body: "Beta body"},
		{ID: 3, Title: "delta", Body: "epsilon"},
	}
	once := SearchRecords(posts, "beta")
	twice := SearchRecords(once, "beta")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent search, got %v then %v", postIDs(once), postIDs(twice))
	}
}

func TestPaginateSlicesAndFlags(t *testing.T) {
	posts := samplePosts(25)

	first := Paginate(posts, 1, 12)
	if len(first.Items) != 12 || first.Items[0].ID != 1 {
		t.Fatalf("unexpected first page: %v", postIDs(first.Items))
	}
	if first.TotalPages != 3 || first.TotalItems != 25 {
		t.Fatalf("expected 3 pages of 25 items, got %d pages of %d", first.TotalPages, first.TotalItems)
	}
	if !first.HasNextPage || first.HasPrevPage {
		t.Fatalf("unexpected flags on first page: next=%v prev=%v", first.HasNextPage, first.HasPrevPage)
	}

	last := Paginate(posts, 3, 12)
	if ids := postIDs(last.Items); !reflect.DeepEqual(ids, []int64{25}) {
		t.Fatalf("expected last page [25], got %v", ids)
	}
	if last.HasNextPage || !last.HasPrevPage {
		t.Fatalf("unexpected flags on last page: next=%v prev=%v", last.HasNextPage, last.HasPrevPage)
	}
}

func TestPaginateBeyondLastPage(t *testing.T) {
	page := Paginate(samplePosts(5), 4, 2)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty items, got %v", postIDs(page.Items))
	}
	if page.CurrentPage != 4 {
		t.Fatalf("expected page to stay 4, got %d", page.CurrentPage)
	}
	if page.TotalPages != 3 || page.HasNextPage || !page.HasPrevPage {
		t.Fatalf("unexpected page result: %+v", page)
	}

	// (page-1)*perPage would wrap to 0 here
	huge := Paginate(samplePosts(8), 4611686018427387905, 4)
	if len(huge.Items) != 0 {
		t.Fatalf("expected empty items for huge page, got %v", postIDs(huge.Items))
	}
	if huge.TotalPages != 2 || huge.HasNextPage || !huge.HasPrevPage {
		t.Fatalf("unexpected huge page result: %+v", huge)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]model.Post{}, 1, 12)
	if page.TotalPages != 0 || page.TotalItems != 0 {
		t.Fatalf("expected zero pages, got %+v", page)
	}
	if page.HasNextPage || page.HasPrevPage {
		t.Fatalf("expected no navigation on empty page, got %+v", page)
	}
	if page.Items == nil {
		t.Fatalf("expected non-nil empty items")
	}
}

func TestPaginateReconstructsSequence(t *testing.T) {
	for _, size := range []int{0, 1, 7, 12, 13, 100} {
		for _, perPage := range []int{1, 5, 12} {
			posts := samplePosts(size)
			first := Paginate(posts, 1, perPage)
			if (first.TotalPages == 0) != (size == 0) {
				t.Fatalf("size %d perPage %d: totalPages=%d", size, perPage, first.TotalPages)
			}

			var joined []model.Post
			for p := 1; p <= first.TotalPages; p++ {
				page := Paginate(posts, p, perPage)
				if len(page.Items) > perPage {
					t.Fatalf("size %d perPage %d page %d: %d items", size, perPage, p, len(page.Items))
				}
				joined = append(joined, page.Items...)
			}
			if !reflect.DeepEqual(postIDs(joined), postIDs(posts)) {
				t.Fatalf("size %d perPage %d: reconstruction mismatch", size, perPage)
			}
		}
	}
}

func TestSearchThenPaginate(t *testing.T) {
	posts := []model.Post{
		{ID: 1, Title: "Foo", Body: "bar"},
		{ID: 2, Title: "Baz", Body: "qux"},
	}
	page := Paginate(SearchRecords(posts, "foo"), 1, DefaultPerPage)
	if ids := postIDs(page.Items); !reflect.DeepEqual(ids, []int64{1}) {
		t.Fatalf("expected [1], got %v", ids)
	}
	if page.TotalPages != 1 || page.HasNextPage {
		t.Fatalf("unexpected page result: %+v", page)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		current, total int
		want           []int
	}{
		{1, 0, nil},
		{1, 1, []int{1}},
		{1, 3, []int{1, 2, 3}},
		{1, 9, []int{1, 2, 0, 9}},
		{5, 9, []int{1, 0, 4, 5, 6, 0, 9}},
		{9, 9, []int{1, 0, 8, 9}},
		{3, 9, []int{1, 2, 3, 4, 0, 9}},
	}
	for _, tc := range cases {
		got := PageWindow(tc.current, tc.total)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("PageWindow(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
		}
	}
}

func samplePosts(n int) []model.Post {
	posts := make([]model.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, model.Post{ID: int64(i), UserID: 1, Title: "title", Body: "body"})
	}
	return posts
}

func postIDs(posts []model.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}
