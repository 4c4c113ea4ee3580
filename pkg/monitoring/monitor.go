package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	InterviewsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviews_started_total",
			Help: "Interview sessions created, by topic",
		},
		[]string{"topic"},
	)

	AnswersScored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "answers_scored_total",
			Help: "Answers evaluated by the scorer",
		},
	)

	AnswerScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "answer_score",
			Help:    "Distribution of answer scores on the 0-10 scale",
			Buckets: []float64{2, 4, 6, 7.5, 9, 10},
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(InterviewsStarted)
	prometheus.MustRegister(AnswersScored)
	prometheus.MustRegister(AnswerScores)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
