package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyaymantra",
		Subsystem: "http",
		Name:      "page_renders_total",
		Help:      "Full page renders served, labelled by route path.",
	}, []string{"path"})

	signupOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyaymantra",
		Subsystem: "identity",
		Name:      "signup_outcomes_total",
		Help:      "Account creation attempts by outcome.",
	}, []string{"outcome"})

	searchSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyaymantra",
		Subsystem: "search",
		Name:      "submissions_total",
		Help:      "Case search submissions by result.",
	}, []string{"result"})
)
