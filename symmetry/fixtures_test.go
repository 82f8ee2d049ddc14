package symmetry_test

import (
	"github.com/katalvlaran/hrpsym/shape"
	"github.com/katalvlaran/hrpsym/symmetry"
)

// goldenSets holds the complete, order-free permutation sets of small prisms.
var goldenSets = []struct {
	dims  shape.Dims
	perms []symmetry.Permutation
}{
	{
		dims: shape.Dims{2, 2},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3},
			{0, 2, 1, 3},
			{1, 0, 3, 2},
			{1, 3, 0, 2},
			{2, 0, 3, 1},
			{2, 3, 0, 1},
			{3, 1, 2, 0},
			{3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{3, 2},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5},
			{2, 1, 0, 5, 4, 3},
			{3, 4, 5, 0, 1, 2},
			{5, 4, 3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{2, 3},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5},
			{1, 0, 3, 2, 5, 4},
			{4, 5, 2, 3, 0, 1},
			{5, 4, 3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{2, 2, 2},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{0, 1, 4, 5, 2, 3, 6, 7},
			{0, 2, 1, 3, 4, 6, 5, 7},
			{0, 2, 4, 6, 1, 3, 5, 7},
			{0, 4, 1, 5, 2, 6, 3, 7},
			{0, 4, 2, 6, 1, 5, 3, 7},
			{1, 0, 3, 2, 5, 4, 7, 6},
			{1, 0, 5, 4, 3, 2, 7, 6},
			{1, 3, 0, 2, 5, 7, 4, 6},
			{1, 3, 5, 7, 0, 2, 4, 6},
			{1, 5, 0, 4, 3, 7, 2, 6},
			{1, 5, 3, 7, 0, 4, 2, 6},
			{2, 0, 3, 1, 6, 4, 7, 5},
			{2, 0, 6, 4, 3, 1, 7, 5},
			{2, 3, 0, 1, 6, 7, 4, 5},
			{2, 3, 6, 7, 0, 1, 4, 5},
			{2, 6, 0, 4, 3, 7, 1, 5},
			{2, 6, 3, 7, 0, 4, 1, 5},
			{3, 1, 2, 0, 7, 5, 6, 4},
			{3, 1, 7, 5, 2, 0, 6, 4},
			{3, 2, 1, 0, 7, 6, 5, 4},
			{3, 2, 7, 6, 1, 0, 5, 4},
			{3, 7, 1, 5, 2, 6, 0, 4},
			{3, 7, 2, 6, 1, 5, 0, 4},
			{4, 0, 5, 1, 6, 2, 7, 3},
			{4, 0, 6, 2, 5, 1, 7, 3},
			{4, 5, 0, 1, 6, 7, 2, 3},
			{4, 5, 6, 7, 0, 1, 2, 3},
			{4, 6, 0, 2, 5, 7, 1, 3},
			{4, 6, 5, 7, 0, 2, 1, 3},
			{5, 1, 4, 0, 7, 3, 6, 2},
			{5, 1, 7, 3, 4, 0, 6, 2},
			{5, 4, 1, 0, 7, 6, 3, 2},
			{5, 4, 7, 6, 1, 0, 3, 2},
			{5, 7, 1, 3, 4, 6, 0, 2},
			{5, 7, 4, 6, 1, 3, 0, 2},
			{6, 2, 4, 0, 7, 3, 5, 1},
			{6, 2, 7, 3, 4, 0, 5, 1},
			{6, 4, 2, 0, 7, 5, 3, 1},
			{6, 4, 7, 5, 2, 0, 3, 1},
			{6, 7, 2, 3, 4, 5, 0, 1},
			{6, 7, 4, 5, 2, 3, 0, 1},
			{7, 3, 5, 1, 6, 2, 4, 0},
			{7, 3, 6, 2, 5, 1, 4, 0},
			{7, 5, 3, 1, 6, 4, 2, 0},
			{7, 5, 6, 4, 3, 1, 2, 0},
			{7, 6, 3, 2, 5, 4, 1, 0},
			{7, 6, 5, 4, 3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{3, 2, 2},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			{0, 1, 2, 6, 7, 8, 3, 4, 5, 9, 10, 11},
			{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9},
			{2, 1, 0, 8, 7, 6, 5, 4, 3, 11, 10, 9},
			{3, 4, 5, 0, 1, 2, 9, 10, 11, 6, 7, 8},
			{3, 4, 5, 9, 10, 11, 0, 1, 2, 6, 7, 8},
			{5, 4, 3, 2, 1, 0, 11, 10, 9, 8, 7, 6},
			{5, 4, 3, 11, 10, 9, 2, 1, 0, 8, 7, 6},
			{6, 7, 8, 0, 1, 2, 9, 10, 11, 3, 4, 5},
			{6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 4, 5},
			{8, 7, 6, 2, 1, 0, 11, 10, 9, 5, 4, 3},
			{8, 7, 6, 11, 10, 9, 2, 1, 0, 5, 4, 3},
			{9, 10, 11, 3, 4, 5, 6, 7, 8, 0, 1, 2},
			{9, 10, 11, 6, 7, 8, 3, 4, 5, 0, 1, 2},
			{11, 10, 9, 5, 4, 3, 8, 7, 6, 2, 1, 0},
			{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{2, 3, 2},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			{0, 6, 2, 8, 4, 10, 1, 7, 3, 9, 5, 11},
			{1, 0, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10},
			{1, 7, 3, 9, 5, 11, 0, 6, 2, 8, 4, 10},
			{4, 5, 2, 3, 0, 1, 10, 11, 8, 9, 6, 7},
			{4, 10, 2, 8, 0, 6, 5, 11, 3, 9, 1, 7},
			{5, 4, 3, 2, 1, 0, 11, 10, 9, 8, 7, 6},
			{5, 11, 3, 9, 1, 7, 4, 10, 2, 8, 0, 6},
			{6, 0, 8, 2, 10, 4, 7, 1, 9, 3, 11, 5},
			{6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 4, 5},
			{7, 1, 9, 3, 11, 5, 6, 0, 8, 2, 10, 4},
			{7, 6, 9, 8, 11, 10, 1, 0, 3, 2, 5, 4},
			{10, 4, 8, 2, 6, 0, 11, 5, 9, 3, 7, 1},
			{10, 11, 8, 9, 6, 7, 4, 5, 2, 3, 0, 1},
			{11, 5, 9, 3, 7, 1, 10, 4, 8, 2, 6, 0},
			{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	},
	{
		dims: shape.Dims{2, 2, 3},
		perms: []symmetry.Permutation{
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			{0, 2, 1, 3, 4, 6, 5, 7, 8, 10, 9, 11},
			{1, 0, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10},
			{1, 3, 0, 2, 5, 7, 4, 6, 9, 11, 8, 10},
			{2, 0, 3, 1, 6, 4, 7, 5, 10, 8, 11, 9},
			{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9},
			{3, 1, 2, 0, 7, 5, 6, 4, 11, 9, 10, 8},
			{3, 2, 1, 0, 7, 6, 5, 4, 11, 10, 9, 8},
			{8, 9, 10, 11, 4, 5, 6, 7, 0, 1, 2, 3},
			{8, 10, 9, 11, 4, 6, 5, 7, 0, 2, 1, 3},
			{9, 8, 11, 10, 5, 4, 7, 6, 1, 0, 3, 2},
			{9, 11, 8, 10, 5, 7, 4, 6, 1, 3, 0, 2},
			{10, 8, 11, 9, 6, 4, 7, 5, 2, 0, 3, 1},
			{10, 11, 8, 9, 6, 7, 4, 5, 2, 3, 0, 1},
			{11, 9, 10, 8, 7, 5, 6, 4, 3, 1, 2, 0},
			{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	},
}
