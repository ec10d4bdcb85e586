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
	scopy accel.Routine[func(n int32, x []float32, incx int32, y []float32, incy int32)]
	dcopy accel.Routine[func(n int32, x []float64, incx int32, y []float64, incy int32)]
	ccopy accel.Routine[func(n int32, x []complex64, incx int32, y []complex64, incy int32)]
	zcopy accel.Routine[func(n int32, x []complex128, incx int32, y []complex128, incy int32)]
)

func init() {
	scopy.Name = "scopy"
	dcopy.Name = "dcopy"
	ccopy.Name = "ccopy"
	zcopy.Name = "zcopy"
}

// Scopy copies n elements of x into y using increment strides incx and
// incy. Negative increments walk the vector backwards, as in Fortran BLAS.
func Scopy(n int32, x []float32, incx int32, y []float32, incy int32) {
	scopy.Fn()(n, x, incx, y, incy)
}

// Dcopy is the float64 variant of Scopy.
func Dcopy(n int32, x []float64, incx int32, y []float64, incy int32) {
	dcopy.Fn()(n, x, incx, y, incy)
}

// Ccopy is the complex64 variant of Scopy.
func Ccopy(n int32, x []complex64, incx int32, y []complex64, incy int32) {
	ccopy.Fn()(n, x, incx, y, incy)
}

// Zcopy is the complex128 variant of Scopy.
func Zcopy(n int32, x []complex128, incx int32, y []complex128, incy int32) {
	zcopy.Fn()(n, x, incx, y, incy)
}
