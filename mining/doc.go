// Package mining keeps a miner script running at full capacity on every
// server it is told about.
//
// A Manager deploys the miner (kill, copy, exec with as many threads as the
// server's free RAM allows) to an initial server list and then consumes a
// Queue of host names, redeploying whenever another command reports a new or
// changed server. All run-time parameters travel in an explicit Session.
//
// Queue has exactly one consumer: Manager.Run refuses to start while another
// Run on the same Manager is active. Producers never block; Notify reports
// false when the queue is full and the notification is dropped.
package mining
