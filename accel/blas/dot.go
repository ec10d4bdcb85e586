// Copyright 2025 go-accelerate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blas

import "github.com/ajroetker/go-accelerate/accel"

var (
	sdot accel.Routine[func(n int32, x []float32, incx int32, y []float32, incy int32) float32]
	ddot accel.Routine[func(n int32, x []float64, incx int32, y []float64, incy int32) float64]

	// The complex dot products use the Fortran hidden-result-pointer
	// convention on the C side; the registered closures surface the
	// result as a plain return value.
	cdotu accel.Routine[func(n int32, x []complex64, incx int32, y []complex64, incy int32) complex64]
	zdotu accel.Routine[func(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128]
	cdotc accel.Routine[func(n int32, x []complex64, incx int32, y []complex64, incy int32) complex64]
	zdotc accel.Routine[func(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128]
)

func init() {
	sdot.Name = "sdot"
	ddot.Name = "ddot"
	cdotu.Name = "cdotu"
	zdotu.Name = "zdotu"
	cdotc.Name = "cdotc"
	zdotc.Name = "zdotc"
}

// Sdot returns the dot product of two float32 vectors with increment
// strides incx and incy.
func Sdot(n int32, x []float32, incx int32, y []float32, incy int32) float32 {
	return sdot.Fn()(n, x, incx, y, incy)
}

// Ddot is the float64 variant of Sdot.
func Ddot(n int32, x []float64, incx int32, y []float64, incy int32) float64 {
	return ddot.Fn()(n, x, incx, y, incy)
}

// Cdotu returns the unconjugated dot product x^T·y of two complex64
// vectors.
func Cdotu(n int32, x []complex64, incx int32, y []complex64, incy int32) complex64 {
	return cdotu.Fn()(n, x, incx, y, incy)
}

// Zdotu is the complex128 variant of Cdotu.
func Zdotu(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128 {
	return zdotu.Fn()(n, x, incx, y, incy)
}

// Cdotc returns the conjugated dot product x^H·y of two complex64 vectors.
func Cdotc(n int32, x []complex64, incx int32, y []complex64, incy int32) complex64 {
	return cdotc.Fn()(n, x, incx, y, incy)
}

// Zdotc is the complex128 variant of Cdotc.
func Zdotc(n int32, x []complex128, incx int32, y []complex128, incy int32) complex128 {
	return zdotc.Fn()(n, x, incx, y, incy)
}
