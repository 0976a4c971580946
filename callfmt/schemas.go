package callfmt

// eth_call result
var CallResult = Bytes()

// eth_blockNumber, eth_chainId, eth_getBalance, ...
var Quantity = Number()

var Log = Object(
	F("address", Bytes()),
	F("topics", List(Bytes())),
	F("data", Bytes()),
	F("blockNumber", Number()),
	F("blockHash", Bytes()),
	F("transactionHash", Bytes()),
	F("transactionIndex", Number()),
	F("logIndex", Number()),
	F("removed", Raw()),
)

var Transaction = Object(
	F("hash", Bytes()),
	F("type", Number()),
	F("chainId", Number()),
	F("nonce", Number()),
	F("from", Bytes()),
	F("to", Bytes()),
	F("input", Bytes()),
	F("value", Number()),
	F("gas", Number()),
	F("gasPrice", Number()),
	F("maxFeePerGas", Number()),
	F("maxPriorityFeePerGas", Number()),
	F("accessList", Raw()),
	F("blockHash", Bytes()),
	F("blockNumber", Number()),
	F("transactionIndex", Number()),
	F("v", Number()),
	F("r", Number()),
	F("s", Number()),
)

var Receipt = Object(
	F("transactionHash", Bytes()),
	F("transactionIndex", Number()),
	F("blockHash", Bytes()),
	F("blockNumber", Number()),
	F("from", Bytes()),
	F("to", Bytes()),
	F("contractAddress", Bytes()),
	F("status", Number()),
	F("type", Number()),
	F("gasUsed", Number()),
	F("cumulativeGasUsed", Number()),
	F("effectiveGasPrice", Number()),
	F("logsBloom", Bytes()),
	F("logs", List(Log)),
)
