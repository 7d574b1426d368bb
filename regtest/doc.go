/*
Package regtest manages RPC sessions against a Bitcoin Core regtest node.

Regtest mode is a private blockchain where block generation happens on
demand, which makes it the right environment for scripted wallet flows.
This package provides the session layer for one such flow: a node-level
client, wallet-scoped clients, wallet create-or-load semantics, and typed
results for the verbose calls rpcclient has no wrapper for.

# Quick Start

	cfg := regtest.DefaultConfig()
	sess, err := regtest.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	if _, err := sess.EnsureWallet("Miner"); err != nil {
		log.Fatal(err)
	}
	miner, _ := sess.Wallet("Miner")
	addr, _ := miner.NewAddress("Mining Reward")
	miner.MineToAddress(101, addr) // Mine to maturity

# Sessions

A Session holds one node-level connection plus one connection per wallet,
scoped through the /wallet/<name> endpoint. The connections are stateless
and reusable; create them once per run. EnsureWallet distinguishes a
fresh create from a load of an existing wallet via its WalletStatus
result, and only treats creation failures other than "already exists" as
errors.

# Node lifecycle

Node starts and stops a local bitcoind for the configured endpoint:

	node := regtest.NewNode(cfg)
	if err := node.Start(); err != nil {
		log.Fatal(err)
	}
	defer node.Stop()

Start launches bitcoind with the config's data directory, credentials and
RPC port, and blocks until RPC answers. This requires Bitcoin Core on the
PATH (brew install bitcoin / apt-get install bitcoind).

# Direct RPC access

The underlying clients remain available for anything not wrapped here:

	count, _ := sess.Client().GetBlockCount()
	mempool, _ := miner.Client().GetRawMempool()

NOT for production use, same as regtest mode itself.
*/
package regtest
