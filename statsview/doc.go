// This file is part of Memedit.
//
// Memedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memedit.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is an optional package that provides a HTTP server
// running locally offering runtime statistics. The underlying functionality
// is provided by "github.com/go-echarts/statsview".
//
// The package is only available when built with the statsview build tag:
//
//	go build -tags statsview
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
//
// Statistics of the memory editor are most interesting when editing large
// address ranges, where the cost of a frame should stay proportional to the
// number of visible lines.
package statsview
