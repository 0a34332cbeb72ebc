package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTree struct {
	titles  map[xproto.Window]string
	kids    map[xproto.Window][]xproto.Window
	broken  map[xproto.Window]bool
	visited []xproto.Window
}

func (f *fakeTree) title(w xproto.Window) (string, error) {
	f.visited = append(f.visited, w)
	if f.broken[w] {
		return "", errors.New("BadWindow")
	}
	return f.titles[w], nil
}

func (f *fakeTree) children(w xproto.Window) ([]xproto.Window, error) {
	return f.kids[w], nil
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		titles: map[xproto.Window]string{
			2:  "Desktop",
			3:  "frame",
			4:  "glbind demo",
			5:  "glbind demo",
			6:  "glbind",
			7:  "terminal",
			10: "doomed",
		},
		kids: map[xproto.Window][]xproto.Window{
			1:  {2, 3, 10, 6},
			3:  {4, 7},
			6:  {5},
			10: {11},
		},
		broken: map[xproto.Window]bool{10: true},
	}
}

func TestFindWindow(t *testing.T) {
	cases := []struct {
		title string
		want  xproto.Window
	}{
		{"Desktop", 2},
		{"glbind demo", 4},
		{"glbind", 6},
		{"terminal", 7},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			w, err := findWindow(newFakeTree(), 1, tc.title)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w)
		})
	}
}

func TestFindWindowDepthFirst(t *testing.T) {
	ft := newFakeTree()
	_, err := findWindow(ft, 1, "glbind")
	require.NoError(t, err)
	assert.Equal(t, []xproto.Window{1, 2, 3, 4, 7, 10, 6}, ft.visited)
}

func TestFindWindowNotFound(t *testing.T) {
	ft := newFakeTree()
	_, err := findWindow(ft, 1, "glbind dem")
	assert.Equal(t, ErrWindowNotFound, errors.Cause(err))
	assert.NotContains(t, ft.visited, xproto.Window(11), "subtree of a vanished window is skipped")
}

func TestFindWindowEmptyTitle(t *testing.T) {
	ft := newFakeTree()
	_, err := findWindow(ft, 1, "")
	assert.Equal(t, ErrWindowNotFound, errors.Cause(err))
	assert.Empty(t, ft.visited, "untitled windows such as the root never match")
}
