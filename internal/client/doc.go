// Package client implements the connecting sides of the roost directory.
//
// # Overview
//
// This package holds the long-lived session loops that agents and brokers
// run against a RoostDirectory server. Both loops survive transport
// failures: they tear down, back off, and rebuild their session from
// scratch, relying on the directory's semantics (idempotent registration,
// full snapshot on resubscribe) to converge after a reconnect.
//
// # Sessions
//
//   - AgentSession: registers an agent, heartbeats its metrics, drains the
//     command stream, and reports results through a CommandHandler.
//   - BrokerView: registers a broker, subscribes to the status feed, and
//     reconciles full and partial snapshots into a local agent map.
//
// # Reconnection
//
// Both sessions share the Backoff helper: delays double from Initial up to
// Max with ±25% jitter, and reset to Initial after a healthy pass. A full
// snapshot is the first message after every resubscribe, so a BrokerView
// that missed partial updates during an outage is made whole immediately.
//
// # Usage
//
//	session := client.NewAgentSession(client.AgentOptions{
//		Client:  roostpb.NewRoostDirectoryClient(conn),
//		Handler: handle,
//	})
//	err := session.Run(ctx)
package client
