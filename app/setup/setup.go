// Package setup builds the services shared by the api server and marketctl from viper settings.
package setup

import (
	"net/http"
	"os"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/database/redisclient"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	pricefomatter "github.com/x-xyz/marketclient/base/price_fomatter"
	"github.com/x-xyz/marketclient/domain"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/mint"
	"github.com/x-xyz/marketclient/domain/notify"
	"github.com/x-xyz/marketclient/domain/txn"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider"
	"github.com/x-xyz/marketclient/service/cache/provider/compound"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
	redisprovider "github.com/x-xyz/marketclient/service/cache/provider/redis"
	"github.com/x-xyz/marketclient/service/chain"
	"github.com/x-xyz/marketclient/service/chain/contract"
	"github.com/x-xyz/marketclient/service/coingecko"
	"github.com/x-xyz/marketclient/service/ens"
	"github.com/x-xyz/marketclient/service/notifier"
	"github.com/x-xyz/marketclient/service/pinata"
	"github.com/x-xyz/marketclient/service/redis"
	"github.com/x-xyz/marketclient/service/refresh"
	catalog_usecase "github.com/x-xyz/marketclient/stores/catalog/usecase"
	hc_repo "github.com/x-xyz/marketclient/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketclient/stores/healthcheck/usecase"
	metadata_usecase "github.com/x-xyz/marketclient/stores/metadata/usecase"
	mint_usecase "github.com/x-xyz/marketclient/stores/mint/usecase"
	txn_repository "github.com/x-xyz/marketclient/stores/txn/repository"
	txn_usecase "github.com/x-xyz/marketclient/stores/txn/usecase"
	wr_repository "github.com/x-xyz/marketclient/stores/web_resource/repository"
	wr_usecase "github.com/x-xyz/marketclient/stores/web_resource/usecase"
)

const DefaultConfigFile = "infra/configs/config.yaml"

// LoadConfig reads the yaml config at path. Secrets may come from the environment or a .env
// file in the working directory.
func LoadConfig(path string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Log().WithField("err", err).Warn("godotenv.Load failed")
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	viper.BindEnv("pinata.apiKey", "PINATA_API_KEY")
	viper.BindEnv("pinata.apiSecret", "PINATA_SECRET_KEY")
	viper.BindEnv("wallet.privateKey", "WALLET_PRIVATE_KEY")
	viper.BindEnv("datadog_host", "DATADOG_HOST")

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

type Services struct {
	Cache    provider.Provider
	Chain    chain.Client
	Contract domain.MarketplaceContract
	Ens      ens.ENS
	Recorder *notifier.Recorder
	Notifier notify.Notifier
	Bus      *refresh.Bus
	Catalog  listing.Usecase
	Txn      txn.Usecase
	Mint     mint.Usecase
	Health   hcdomain.HealthCheckUsecase
}

// New wires every usecase. sinks receive notifications next to the log and the recorder.
func New(c bCtx.Ctx, sinks ...notify.Notifier) (*Services, error) {
	cacheProvider := newCacheProvider(c)

	c.Info("init chain")
	chainClient, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrl:         viper.GetString("chain.rpcUrl"),
		ChainId:        viper.GetInt64("chain.chainId"),
		PrivateKey:     viper.GetString("wallet.privateKey"),
		MaxInflight:    viper.GetInt("chain.maxInflight"),
		ReceiptTimeout: viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		return nil, err
	}
	if addr, ok := chainClient.Account(); ok {
		c.WithField("account", addr.Hex()).Info("wallet loaded")
	} else {
		c.Warn("no wallet configured, transactions are unavailable")
	}
	marketplace := contract.NewMarketplace(&contract.MarketplaceCfg{
		ChainService: chainClient,
		Address:      domain.Address(viper.GetString("chain.marketplace")).ToLower(),
	})

	// ens on the same network
	ensService := ens.New(chainClient.Backend(), cacheProvider)

	httpTimeout := viper.GetDuration("http.timeout")
	gateway := viper.GetString("ipfs.gateway")
	var ipfsReader domain.WebResourceReaderRepository = wr_repository.NewIpfsGatewayReaderRepo(http.Client{}, gateway, httpTimeout)
	if nodeApi := viper.GetString("ipfs.nodeApi"); len(nodeApi) > 0 {
		ipfsReader = wr_repository.NewFallbackReaderRepo(
			wr_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout),
			ipfsReader,
		)
	}
	webResource := wr_usecase.NewWebResourceUseCase(&wr_usecase.WebResourceUseCaseCfg{
		HttpReader:    wr_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: wr_repository.NewDataUriReaderRepo(),
		Gateway:       gateway,
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource: webResource,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxMetadata,
			Cache: cacheProvider,
		}),
	})

	coinGecko := coingecko.NewClient(&coingecko.ClientCfg{
		Timeout:  viper.GetDuration("coingecko.timeout"),
		CacheTtl: viper.GetDuration("coingecko.cacheTtl"),
	})
	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		CoinGecko:     coinGecko,
		NativeTokenId: viper.GetString("coingecko.nativeTokenId"),
	})

	pinning := pinata.New(&pinata.Cfg{
		ApiKey:    viper.GetString("pinata.apiKey"),
		ApiSecret: viper.GetString("pinata.apiSecret"),
		Endpoint:  viper.GetString("pinata.endpoint"),
		Timeout:   viper.GetDuration("pinata.timeout"),
	})

	recorder := notifier.NewRecorder(viper.GetInt("notifier.recorderLimit"))
	all := []notify.Notifier{notifier.NewLogNotifier(), recorder}
	if botKey := viper.GetString("discord.botKey"); len(botKey) > 0 {
		discord, err := notifier.NewDiscordNotifier(notifier.DiscordCfg{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
			Kinds:     []notify.Kind{notify.KindSuccess, notify.KindWarning, notify.KindError},
		})
		if err != nil {
			c.WithField("err", err).Warn("discord notifier disabled")
		} else {
			all = append(all, discord)
		}
	}
	all = append(all, sinks...)
	notifications := notifier.NewFanout(all...)

	// sinks that also stream catalog versions, e.g. the websocket hub
	listeners := []listing.RefreshListener{}
	for _, sink := range sinks {
		if l, ok := sink.(listing.RefreshListener); ok {
			listeners = append(listeners, l)
		}
	}

	bus := refresh.NewBus()
	readDelay := catalog_usecase.DefaultReadDelay
	if viper.IsSet("catalog.readDelay") {
		readDelay = viper.GetDuration("catalog.readDelay")
	}
	catalog := catalog_usecase.NewCatalogUseCase(&catalog_usecase.CatalogUseCaseCfg{
		Contract:       marketplace,
		Metadata:       metadata,
		PriceFormatter: priceFormatter,
		Listeners:      listeners,
		ReadDelay:      readDelay,
	})

	pending := txn_repository.NewPendingRepo()
	txns := txn_usecase.NewTxnUseCase(&txn_usecase.TxnUseCaseCfg{
		Contract:  marketplace,
		Chain:     chainClient,
		Pending:   pending,
		Drafts:    txn_repository.NewDraftRepo(cacheProvider, viper.GetDuration("txn.draftTtl")),
		Notifier:  notifications,
		Refresher: bus,
	})
	minter := mint_usecase.NewMintUseCase(&mint_usecase.MintUseCaseCfg{
		Contract:    marketplace,
		Pinning:     pinning,
		Pending:     pending,
		Notifier:    notifications,
		Refresher:   bus,
		MaxFileSize: viper.GetInt64("mint.maxFileSize"),
	})

	health := hc_usecase.New(hc_repo.New(chainClient, cacheProvider))

	return &Services{
		Cache:    cacheProvider,
		Chain:    chainClient,
		Contract: marketplace,
		Ens:      ensService,
		Recorder: recorder,
		Notifier: notifications,
		Bus:      bus,
		Catalog:  catalog,
		Txn:      txns,
		Mint:     minter,
		Health:   health,
	}, nil
}

// newCacheProvider layers redis behind the in-process cache when redis_cache.uri is set
func newCacheProvider(c bCtx.Ctx) provider.Provider {
	sizeMB := viper.GetInt("cache.sizeMB")
	if sizeMB <= 0 {
		sizeMB = 32
	}
	local := primitive.NewPrimitive("marketclient", sizeMB)

	uri := viper.GetString("redis_cache.uri")
	if len(uri) == 0 {
		return local
	}

	c.Info("init redis cache")
	name := viper.GetString("redis_cache.name")
	pool, err := redisclient.ConnectRedis(c, uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retries:        2,
	})
	if err != nil {
		c.WithField("err", err).Warn("redis unavailable, using in-process cache only")
		return local
	}
	return compound.NewCompound(local, redisprovider.NewRedis(redis.New(name, metrics.New(name), pool)))
}
