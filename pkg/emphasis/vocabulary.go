package emphasis

// Vocabulary is the default set of technical terms emphasized in résumé prose.
// Order is irrelevant: New sorts by length before matching.
//
//nolint:gochecknoglobals // static data table
var Vocabulary = []string{
	// Languages (Modern & Legacy)
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Go", "C++", "C#", "C", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Objective-C", "Scala", "Elixir", "Haskell", "Lua",
	"Dart", "Solidity", "Vyper", "Perl", "Groovy", "Clojure", "F#", "OCaml", "Erlang",
	"Assembly", "VHDL", "Verilog", "R", "MATLAB", "Julia", "Bash", "Shell", "PowerShell",
	"COBOL", "Fortran", "Pascal", "Ada", "Lisp", "Scheme", "Racket", "Smalltalk", "Tcl",
	"Crystal", "Nim", "Zig", "ReasonML", "PureScript", "Elm", "Hack", "Visual Basic", "VBA",
	"ActionScript", "ColdFusion", "Delphi", "Eiffel", "FoxPro", "LabVIEW", "Ladder Logic",
	"Modula-2", "PL/SQL", "Transact-SQL", "T-SQL", "Simulink", "Standard ML", "Wolfram Language",
	"Mathematica", "APL", "J", "PostScript", "Awk", "Sed", "XSLT", "XPath",

	// Frontend & Web
	"React", "React.js", "Next.js", "Vue", "Vue.js", "Angular", "Svelte", "Ember.js",
	"Backbone.js", "jQuery", "Redux", "Jotai", "Zustand", "MobX", "Recoil", "Context API",
	"React Query", "TanStack Query", "SWR", "Formik", "React Hook Form", "Webpack", "Vite",
	"Parcel", "Rollup", "Babel", "ESBuild", "Bun", "Deno", "HTML", "HTML5", "CSS", "CSS3",
	"Sass", "SCSS", "Less", "Stylus", "Tailwind", "Tailwind CSS", "Bootstrap", "Material-UI",
	"MUI", "Chakra UI", "Ant Design", "Styled-Components", "Emotion", "Bulma", "Foundation",
	"WebAssembly", "WASM", "WebGL", "Three.js", "D3.js", "Chart.js", "Highcharts",
	"React Router", "Gatsby", "Nuxt.js", "Remix", "Astro", "SolidJS", "Qwik", "Alpine.js",
	"Lit", "Stencil", "RxJS", "Zod", "Yup", "Immer", "Lodash", "Moment.js", "Date-fns",
	"Handlebars", "Mustache", "Pug", "Jade", "EJS", "Liquid", "Nunjucks", "Smarty",
	"Blade", "Twig", "Jinja2", "HTMX", "Hyperscript", "Pico.css", "DaisyUI", "Mantine",
	"Headless UI", "Radix UI", "Shadcn", "Storybook", "Framer Motion", "GSAP", "Anime.js",
	"Leaflet", "Mapbox", "OpenLayers", "Cesium", "Video.js", "Plyr", "Howler.js",

	// Backend & Frameworks
	"Node.js", "Express.js", "Spring", "Spring Boot", "Django", "Flask", "FastAPI",
	"Ruby on Rails", "Laravel", "Symfony", "ASP.NET", ".NET", ".NET Core", "NestJS", "Koa",
	"Hapi", "Meteor", "Phoenix", "Gin", "Echo", "Fiber", "Play Framework", "Hibernate",
	"JPA", "Entity Framework", "Prisma", "TypeORM", "Sequelize", "Mongoose", "SQLAlchemy",
	"CakePHP", "CodeIgniter", "Yii", "Zend", "Slim", "Sinatra", "Hanami", "Grails", "Dropwizard",
	"Micronaut", "Quarkus", "Helidon", "Ktor", "Rocket", "Actix", "Axum", "Revel", "Beego",
	"LoopBack", "Sails.js", "AdonisJS", "Feathers", "Moleculer", "Fastify", "Restify",
	"Sanic", "Tornado", "Pyramid", "Bottle", "CherryPy", "Falcon", "Hug", "Masonite",
	"Vapor", "Kitura", "Perfect", "Buffalo", "Martini", "Iris", "Chi", "Gorilla Mux",
	"Vert.x", "Ratpack", "Spark Java", "Javalin", "Struts", "JSF", "Vaadin", "Wicket",
	"Gails", "ColdBox", "Mojolicious", "Catalyst", "Dancer", "Plack", "Laminas", "Phalcon",

	// Mobile & Desktop
	"React Native", "Flutter", "Ionic", "Xamarin", "Expo", "Electron", "Tauri",
	"SwiftUI", "UIKit", "Jetpack Compose", "Android SDK", "iOS SDK", "Cordova", "PhoneGap",
	"NativeScript", "Capacitor", "Qt", "GTK", "WPF", "WinForms", "Cocoa", "Cocoa Touch",
	"Maui", "Uno Platform", "Avalonia", "Kivy", "BeeWare", "Tkinter", "PyQt", "PySide",
	"WxPython", "Fyne", "Gio", "Sciter", "NW.js", "Neutralinojs", "Proton Native",
	"AppKit", "Carbon", "UWP", "WinUI", "MFC", "ATL", "VCL", "FireMonkey",

	// Database & Data
	"SQL", "MySQL", "PostgreSQL", "SQLite", "MariaDB", "MSSQL", "NoSQL", "MongoDB",
	"Cassandra", "DynamoDB", "CouchDB", "Redis", "Memcached", "Elasticsearch", "Neo4j",
	"ArangoDB", "Firebase", "Supabase", "Realm", "CockroachDB", "Snowflake", "BigQuery",
	"Redshift", "Hadoop", "Spark", "Hive", "Kafka", "Apache Kafka", "RabbitMQ", "ActiveMQ",
	"Pulsar", "SQS", "SNS", "Kinesis", "ZeroMQ", "NATS", "ClickHouse", "TimescaleDB",
	"InfluxDB", "ScyllaDB", "HBase", "Teradata", "Oracle DB", "DB2", "Informix", "Sybase",
	"Presto", "Trino", "Flink", "Storm", "Samza", "Beam", "Airflow", "Prefect", "Dagster",
	"dbt", "ETL", "ELT", "Data Lake", "Data Warehouse",
	"DuckDB", "Parquet", "Avro", "ORC", "Arrow", "Dremio", "Druid", "Pinot", "Kylin",
	"Vertica", "Greenplum", "Netezza", "Exasol", "SingleStore", "TiDB", "YugabyteDB",
	"FoundationDB", "RethinkDB", "RavenDB", "OrientDB", "JanusGraph", "TigerGraph",
	"FaunaDB", "SurrealDB", "MeiliSearch", "Typesense", "Solr", "Lucene", "Algolia",
	"Vector Database", "Pinecone", "Milvus", "Weaviate", "Chroma", "Qdrant",

	// DevOps, Cloud & Infrastructure
	"AWS", "Amazon Web Services", "Azure", "Google Cloud", "GCP", "Digital Ocean", "Heroku",
	"Vercel", "Netlify", "Linode", "Cloudflare", "Akamai", "Docker", "Kubernetes", "K8s",
	"Terraform", "Ansible", "Chef", "Puppet", "Vagrant", "Jenkins", "CircleCI", "Travis CI",
	"GitLab CI", "GitHub Actions", "ArgoCD", "Bamboo", "TeamCity", "Prometheus", "Grafana",
	"ELK Stack", "Splunk", "Datadog", "New Relic", "PagerDuty", "Nginx", "Apache", "HAProxy",
	"Envoy", "Istio", "Linkerd", "Linux", "Ubuntu", "Debian", "CentOS", "Red Hat", "Fedora",
	"Arch Linux", "Alpine", "Windows Server", "VirtualBox", "VMware", "OpenStack", "Openshift",
	"Rancher", "Nomad", "Consul", "Vault", "Packer", "Pulumi", "Crossplane", "Helm", "Kustomize",
	"Flux", "Tekton", "Spinnaker", "Nagios", "Zabbix", "Sentry", "Logstash", "Kibana", "Fluentd",
	"Podman", "LXC", "LXD", "Mesos", "Marathon", "SaltStack", "Fabric", "Capistrano",
	"Waypoint", "Bosh", "CloudFoundry", "AppEngine", "Lambda", "Fargate", "ECS", "EKS",
	"AKS", "GKE", "Serverless Framework", "SAM", "CDK", "CloudFormation", "Bicep",
	"Traefik", "Caddy", "Kong", "Tyk", "Ambassador", "Contour", "Gloo", "Cilium",
	"Calico", "Flannel", "Weave Net", "CoreDNS", "Etcd", "ZooKeeper", "Thanos",
	"Cortex", "VictoriaMetrics", "Loki", "Tempo", "Jaeger", "Zipkin", "OpenTelemetry",
	"Checkmk", "Icinga", "Netdata", "Glances", "Htop", "Strace", "Tcpdump",

	// Testing & QA
	"Jest", "Mocha", "Chai", "Cypress", "Puppeteer", "Playwright", "Selenium", "TestNG",
	"JUnit", "PyTest", "RSpec", "Cucumber", "Appium", "Karma", "Jasmine", "Enzyme",
	"Testing Library", "Vitest", "K6", "JMeter", "Gatling", "SonarQube", "Espresso", "XCTest",
	"Detox", "Robot Framework", "Sauce Labs", "BrowserStack", "LoadRunner", "Locust",
	"TestCafe", "Nightwatch.js", "WebdriverIO", "Protractor", "Ava", "Tape", "QUnit",
	"Sinon", "Nock", "MSW", "WireMock", "Mountebank", "Postman Collections", "Newman",
	"Allure", "ReportPortal", "TestRail", "Zephyr", "Xray", "Coveralls", "Codecov",
	"Hypothesis", "Property-based Testing", "Fuzz Testing", "Chaos Monkey", "Gremlin",

	// Web3 & Blockchain
	"Web3.js", "Ethers.js", "Wagmi", "Viem", "Hardhat", "Truffle", "Foundry", "Ganache",
	"Ethereum", "Solana", "Polygon", "Arbitrum", "Optimism", "Binance Smart Chain",
	"Smart Contracts", "DeFi", "NFT", "DAO", "IPFS", "Filecoin", "Chainlink", "The Graph",
	"Privy", "RainbowKit", "WalletConnect", "Metamask", "Phantom", "Gnosis Safe",
	"Jupiter", "Uniswap", "GMX", "Aave", "Compound", "Curve", "Hyperliquid",
	"Coingecko", "BirdEye", "DexScreener", "ERC-20", "ERC-721", "ERC-1155",
	"Cosmos", "Polkadot", "Near", "Avalanche", "Fantom", "Tezos", "Cardano", "Ripple",
	"Stellar", "Monero", "Zcash", "Algorand", "Hedera", "EVM", "Solc", "Slither", "MythX",
	"OpenZeppelin", "Alchemy", "Infura", "Moralis", "Tenderly", "Dune Analytics",
	"Rust (Solana)", "Anchor", "Sealevel", "Move", "Aptos", "Sui", "Cairo", "StarkNet",
	"ZkSync", "Hermez", "Loopring", "Immutable X", "Mina", "Celestia", "EigenLayer",
	"Lens Protocol", "Farcaster", "Arweave", "Thorchain", "CosmWasm", "Substrate",
	"Ink!", "Clarity", "Cadence", "Flow", "Hyperledger", "Fabric", "Corda", "Quorum",

	// Architecture & Concepts
	"REST", "RESTful", "GraphQL", "Apollo", "gRPC", "Protobuf", "TRPC", "Socket.io",
	"WebSockets", "Microservices", "Serverless", "Monolith", "Event-Driven", "TDD", "BDD",
	"CI/CD", "OOP", "FP", "MVC", "MVVM", "SOLID", "DRY", "KISS", "YAGNI", "Agile", "Scrum",
	"Kanban", "Waterfall", "DevOps", "GitOps", "Infrastructure as Code", "IaC", "OAuth",
	"OAuth2", "OIDC", "JWT", "SAML", "LDAP", "SSO", "HTTPS", "SSL", "TLS", "SSH", "Cors",
	"PWA", "SPA", "SSR", "SSG", "ISR", "Jamstack", "12-Factor App", "Clean Architecture",
	"Hexagonal Architecture", "Domain-Driven Design", "DDD", "CQRS", "Event Sourcing",
	"Actor Model", "Reactive Programming", "Functional Reactive Programming", "FRP",
	"Design Patterns", "Singleton", "Factory", "Observer", "Strategy", "Decorator",
	"Adapter", "Facade", "Proxy", "Command", "Iterator", "Template Method",
	"Visitor", "Composite", "Bridge", "Flyweight", "Chain of Responsibility", "Mediator",
	"Memento", "Interpreter", "Anti-patterns", "Code Smells", "Technical Debt",
	"Refactoring", "Pair Programming", "Mob Programming", "Code Review", "Static Analysis",
	"Dynamic Analysis", "Profiling", "Benchmarking", "Optimization", "Scalability",
	"High Availability", "Fault Tolerance", "Disaster Recovery", "CAP Theorem", "ACID",
	"Sharding", "Replication", "Partitioning", "Caching", "Load Balancing",
	"Rate Limiting", "Throttling", "Circuit Breaker", "Bulkhead",
	"Idempotency", "Consistency", "Availability", "Partition Tolerance",

	// Tools & IDEs
	"Git", "GitHub", "GitLab", "Bitbucket", "Jira", "Confluence", "Trello", "Asana", "Notion",
	"Slack", "Discord", "Zoom", "Teams", "Figma", "Sketch", "Adobe XD", "Postman", "Insomnia",
	"Swagger", "OpenAPI", "VS Code", "Visual Studio Code", "IntelliJ IDEA", "WebStorm",
	"PyCharm", "Eclipse", "NetBeans", "Android Studio", "Xcode", "Vim", "Neovim", "Emacs",
	"Nano", "Maven", "Gradle", "Ant", "Yarn", "NPM", "PNPM", "Pip", "Homebrew", "Chocolatey",
	"Scoop", "Apt", "Yum", "Pacman", "Make", "CMake", "Bazel", "Ninja",
	"Rider", "GoLand", "CLion", "RubyMine", "PhpStorm", "DataGrip", "AppCode",
	"Sublime Text", "Atom", "Notepad++", "TextMate", "Kakoune", "Helix", "Micro",
	"Tmux", "Zsh", "Fish", "Oh My Zsh", "Starship", "Direnv", "Nix", "NixOS", "Guix",
	"Asdf", "Nvm", "Rbenv", "Pyenv", "SDKMAN", "Volta", "Fnm", "Corepack",
	"Husky", "Lint-staged", "Commitizen", "Semantic Release", "Standard Version",
	"Lerna", "Nx", "Turborepo", "Rush", "Pants", "Buck", "Please", "Taskfile",
	"Just", "Rake", "Invoke", "Gulp", "Grunt", "Yeoman", "Cookiecutter",

	// Security
	"OWASP", "Penetration Testing", "Metasploit", "Burp Suite", "Wireshark", "Nmap", "Kali Linux",
	"Snort", "Suricata", "Osquery", "Wazuh", "CrowdStrike", "Splunk ES", "Sentinel",
	"ZAP", "Nessus", "Qualys", "OpenVAS", "ClamAV", "Yara", "Zeek", "Bro",
	"ModSecurity", "Fail2Ban", "UFW", "Iptables", "Firewalld", "SELinux", "AppArmor",
	"GPG", "PGP", "OpenSSL", "BoringSSL", "LibreSSL", "Keybase", "1Password", "LastPass",
	"Bitwarden", "Vaultwarden", "KeePass", "KeePassXC", "Authy", "Google Authenticator",
	"YubiKey", "Duo", "Okta", "Auth0", "Cognito", "Firebase Auth", "Clerk", "Supabase Auth",
	"Magic Link", "WebAuthn", "FIDO", "FIDO2", "Passkeys", "RBAC", "ABAC", "PBAC",
	"XSS", "CSRF", "SQL Injection", "RCE", "SSRF", "XXE", "IDOR", "Clickjacking",
	"Man-in-the-Middle", "Phishing", "Social Engineering", "Ransomware", "Malware",
	"Rootkit", "Bootkit", "Spyware", "Adware", "Trojan", "Worm", "Virus", "Botnet",
	"DDoS", "Zero-day", "Exploit", "Payload", "Shellcode", "Reverse Engineering",
	"Forensics", "Incident Response", "Threat Hunting", "Threat Intelligence",

	// AI & ML
	"OpenAI", "ChatGPT", "GPT-3", "GPT-4", "Claude", "Gemini", "LLM", "LangChain",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy", "SciPy",
	"Jupyter Notebook", "Hugging Face", "Copilot", "Midjourney", "Stable Diffusion",
	"XGBoost", "LightGBM", "CatBoost", "OpenCV", "NLTK", "Spacy", "Gensim", "FastAI",
	"LlamaIndex", "AutoGPT", "BabyAGI", "Pinecone", "ChromaDB", "Weaviate", "Milvus",
	"Qdrant", "DeepSpeed", "Ray", "Horovod", "ONNX", "TensorRT", "OpenVINO",
	"CoreML", "TFLite", "TFX", "MLflow", "Kubeflow", "Seldon", "BentoML", "Cortex",
	"Streamlit", "Gradio", "Dash", "Shiny", "Bokeh", "Plotly", "Matplotlib", "Seaborn",
	"Altair", "Folium", "Pydeck", "Kepler.gl", "FiftyOne", "Label Studio", "Prodigy",
	"Roboflow", "YOLO", "R-CNN", "Mask R-CNN", "Faster R-CNN", "SSD", "RetinaNet",
	"EfficientNet", "ResNet", "VGG", "Inception", "MobileNet", "Transformer", "BERT",
	"RoBERTa", "DistilBERT", "ALBERT", "T5", "GPT-2", "Bloom", "Falcon", "Llama",
	"Mistral", "Vicuna", "Guanaco", "WizardLM", "Orca", "Phi", "Qwen", "Yi",
}
