// Package plan runs the complete districting pipeline and reports on it.
//
// Run validates a Config, applies the component policy to the precinct
// graph, selects seeds, grows an initial plan, refines it by simulated
// annealing and returns the assignment together with a Summary. Summarize
// rebuilds the same report for a plan produced elsewhere.
//
// Errors
//
//	ErrConfiguration         - any invalid setting; *ConfigError names the key.
//	                           A band too tight to place every unit is blamed
//	                           on "epsilon" and also matches
//	                           grow.ErrCapacityExhausted.
//	precinct.ErrGraphIntegrity - structural problems, including a disconnected
//	                           graph under the "require" policy.
//
// Every other problem is recovered and listed in Summary.Warnings.
//
// Observability
//
//	log/slog                 - phase and progress logging (WithLogger).
//	OpenTelemetry            - one span per run and per phase (WithTracer).
//	Prometheus (package metrics) - placements, iterations, phase latency.
package plan
