// Copyright 2025 The Kestrel Authors
// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kestrel. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kestrel",
		Subsystem: "vm",
		Name:      "calls_dispatched_total",
		Help:      "Calls that reached the host, by kind and host-reported status.",
	}, []string{"kind", "status"})

	callsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kestrel",
		Subsystem: "vm",
		Name:      "calls_rejected_total",
		Help:      "Calls rejected before reaching the host, by kind and reason.",
	}, []string{"kind", "reason"})

	callGasOffered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kestrel",
		Subsystem: "vm",
		Name:      "call_gas_offered_total",
		Help:      "Total gas forwarded to callees.",
	})
)
