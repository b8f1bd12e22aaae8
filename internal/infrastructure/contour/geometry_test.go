package contour

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArea_OrientationIndependent(t *testing.T) {
	ccw := []image.Point{{0, 0}, {0, 4}, {3, 4}, {3, 0}}
	cw := []image.Point{{0, 0}, {3, 0}, {3, 4}, {0, 4}}
	require.Equal(t, 12.0, Area(ccw))
	require.Equal(t, 12.0, Area(cw))
	require.Equal(t, 0.0, Area(ccw[:2]))
}

func TestArcLength(t *testing.T) {
	square := []image.Point{{0, 0}, {0, 4}, {3, 4}, {3, 0}}
	require.Equal(t, 14.0, ArcLength(square, true))
	require.Equal(t, 11.0, ArcLength(square, false))
	require.Equal(t, 0.0, ArcLength(square[:1], true))
}

func TestBoundingRect(t *testing.T) {
	require.Equal(t, image.Rectangle{}, BoundingRect(nil))
	require.Equal(t, image.Rect(2, 3, 3, 4), BoundingRect([]image.Point{{2, 3}}))
	require.Equal(t, image.Rect(-1, 0, 5, 8), BoundingRect([]image.Point{{4, 7}, {-1, 0}, {2, 2}}))
}

func TestConvexHull_LShape(t *testing.T) {
	l := []image.Point{{0, 0}, {0, 4}, {4, 4}, {4, 3}, {1, 3}, {1, 0}}
	hull := ConvexHull(l)
	require.ElementsMatch(t, []image.Point{{0, 0}, {0, 4}, {4, 4}, {4, 3}, {1, 0}}, hull)
	require.Equal(t, 7.0, Area(l))
	require.Greater(t, Area(hull), Area(l))
}

func TestConvexHull_Degenerate(t *testing.T) {
	require.Len(t, ConvexHull([]image.Point{{1, 1}, {1, 1}}), 1)
	require.Empty(t, ConvexHull(nil))
}
