package render_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-themekit/pkg/render"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration with problems",
			err:  &render.ConfigurationError{ThemeID: "glass", Problems: []string{"id is required", "version is required"}},
			want: `render: configuration error for theme "glass": id is required; version is required`,
		},
		{
			name: "configuration wrapping",
			err:  &render.ConfigurationError{Err: io.EOF},
			want: "render: configuration error: EOF",
		},
		{
			name: "unresolved block",
			err:  &render.UnresolvedRendererError{ThemeID: "glass", Kind: render.KindBlock, Name: "video", Path: []int{0, 2}},
			want: `render: theme "glass" has no block renderer for "video" (path 0.2)`,
		},
		{
			name: "unresolved slot",
			err:  &render.UnresolvedRendererError{ThemeID: "glass", Kind: render.KindSlot, Name: "footer"},
			want: `render: theme "glass" has no slot renderer for "footer" (path $)`,
		},
		{
			name: "depth",
			err:  &render.DepthExceededError{NodeType: "card", Path: []int{0, 0, 0}, Depth: 3, Limit: 2},
			want: `render: node "card" at path 0.0.0 is nested 3 deep (limit 2)`,
		},
		{
			name: "cycle",
			err:  &render.DepthExceededError{NodeType: "card", Path: []int{1, 0}, Cycle: true},
			want: `render: node "card" at path 1.0 re-enters its own ancestry`,
		},
		{
			name: "fault with error",
			err:  &render.RendererFaultError{Kind: render.KindBlock, Name: "image", Path: []int{4}, Err: errors.New("image: src is required")},
			want: `render: block renderer "image" failed at path 4: image: src is required`,
		},
		{
			name: "fault with panic",
			err:  &render.RendererFaultError{Kind: render.KindSlot, Name: "header", Panic: "boom"},
			want: `render: slot renderer "header" failed at path $: panic: boom`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.err.Error()); diff != "" {
				t.Fatalf("message mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrorSentinels(t *testing.T) {
	cause := errors.New("cause")
	cases := []struct {
		err      error
		sentinel error
	}{
		{&render.ConfigurationError{}, render.ErrConfiguration},
		{&render.UnresolvedRendererError{}, render.ErrUnresolvedRenderer},
		{&render.DepthExceededError{}, render.ErrDepthExceeded},
		{&render.RendererFaultError{Err: cause}, render.ErrRendererFault},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Fatalf("%T does not match %v", tc.err, tc.sentinel)
		}
		for _, other := range []error{render.ErrConfiguration, render.ErrUnresolvedRenderer, render.ErrDepthExceeded, render.ErrRendererFault} {
			if other != tc.sentinel && errors.Is(tc.err, other) {
				t.Fatalf("%T unexpectedly matches %v", tc.err, other)
			}
		}
	}

	fault := &render.RendererFaultError{Err: cause}
	if !errors.Is(fault, cause) {
		t.Fatalf("fault should unwrap to its cause")
	}

	var target *render.ConfigurationError
	wrapped := errors.Join(errors.New("context"), &render.ConfigurationError{ThemeID: "x"})
	if !errors.As(wrapped, &target) || target.ThemeID != "x" {
		t.Fatalf("errors.As failed for wrapped configuration error: %v", wrapped)
	}
}

func TestFormatPath(t *testing.T) {
	if got := render.FormatPath(nil); got != "$" {
		t.Fatalf("root path = %q", got)
	}
	if got := render.FormatPath([]int{0, 12, 3}); got != "0.12.3" {
		t.Fatalf("path = %q", got)
	}
}

func TestCommentPlaceholder(t *testing.T) {
	got := render.CommentPlaceholder(render.Event{
		Kind:     render.EventUnresolvedBlock,
		NodeType: "x--y<",
		Path:     []int{1},
	})
	want := "<!-- themekit: unresolved_block x- -y&lt; at 1 -->"
	if string(got) != want {
		t.Fatalf("placeholder = %q, want %q", got, want)
	}

	slot := render.CommentPlaceholder(render.Event{Kind: render.EventUnresolvedSlot, Slot: "footer"})
	if string(slot) != "<!-- themekit: unresolved_slot footer at $ -->" {
		t.Fatalf("slot placeholder = %q", slot)
	}
}
