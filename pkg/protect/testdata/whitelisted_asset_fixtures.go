package testdata

// RealAssetPayloadAsString is the payload of a real whitelisted asset
// reply (the USDC token contract on Ethereum mainnet).
const RealAssetPayloadAsString = `{"blockchain":"ETH","network":"mainnet","contractAddress":"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48","name":"USD Coin","symbol":"USDC","decimals":6}`

// RealAssetMetadataHash is the SHA-256 hash of RealAssetPayloadAsString.
const RealAssetMetadataHash = "4aecce3b06ba2a5a72160e2f2cf19e21257b916f34ea9b4122287879c1eedafc"
