package coo_test

import (
	"fmt"

	"github.com/numstack/linsys/coo"
	"github.com/numstack/linsys/dense"
)

// ExampleNew shows additive assembly: the (0,0) coefficient arrives as
// two half-contributions and folds to 1 at materialization time.
func ExampleNew() {
	trip, _ := coo.New(2, 2, 5, false)
	_ = trip.Put(0, 0, 0.5)
	_ = trip.Put(0, 0, 0.5)
	_ = trip.Put(0, 1, 2.0)
	_ = trip.Put(1, 0, 3.0)
	_ = trip.Put(1, 1, 4.0)

	fmt.Print(trip.AsDense())
	// Output:
	// [1, 2]
	// [3, 4]
}

// ExampleTriplet_MulVec multiplies a triangle-only symmetric store,
// letting the evaluator mirror the implied upper triangle.
func ExampleTriplet_MulVec() {
	trip, _ := coo.New(3, 3, 5, true)
	_ = trip.Put(0, 0, 2)
	_ = trip.Put(1, 1, 2)
	_ = trip.Put(2, 2, 2)
	_ = trip.Put(1, 0, -1)
	_ = trip.Put(2, 1, -1)

	u, _ := dense.VectorFrom([]float64{5, 8, 7})
	v, _ := trip.MulVec(u, true)

	fmt.Println(v)
	// Output:
	// [2, 4, 6]
}

// ExampleVerify checks a candidate solution independently of whatever
// solver produced it.
func ExampleVerify() {
	trip, _ := coo.New(3, 3, 4, false)
	_ = trip.Put(0, 0, 1)
	_ = trip.Put(0, 2, 4)
	_ = trip.Put(1, 1, 2)
	_ = trip.Put(2, 2, 3)

	x, _ := dense.VectorFrom([]float64{1, 1, 1})
	rhs, _ := dense.VectorFrom([]float64{5, 2, 3})

	check, _ := coo.Verify(trip, x, rhs, false)
	fmt.Printf("maxAbsA=%v maxAbsAx=%v relativeError=%v\n",
		check.MaxAbsA, check.MaxAbsAx, check.RelativeError)
	// Output:
	// maxAbsA=4 maxAbsAx=5 relativeError=0
}
