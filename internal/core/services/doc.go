// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (processors, sources).
//
// Services depend only on domain, the ports and the logger.
package services
