package container

// Options holds process configuration, populated by humacli from flags
// and environment.
type Options struct {
	Port        int    `default:"8888"           help:"Port to listen on"                                            short:"p"`
	RedisAddr   string `default:"localhost:6379" help:"Redis server address"                                         short:"r"`
	PostgresDSN string `default:""               help:"Postgres DSN for the denial audit store (noop when empty)"`
	LogFormat   string `default:"console"        help:"Log format: console or json"`
	SharedQuota bool   `default:"false"          help:"Count admissions in Redis for one shared quota across processes"`
}
