package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/limaJavier/cargolp/pkg/lp"
)

var _ = Describe("Load", func() {
	var directory string

	writeFile := func(name, content string) string {
		path := filepath.Join(directory, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		directory = GinkgoT().TempDir()
	})

	It("returns the defaults without a config file", func() {
		config, err := Load(New(), "")

		Expect(err).NotTo(HaveOccurred())
		Expect(config.Naming).To(Equal("compact"))
		Expect(config.Precision).To(Equal(2))
		Expect(config.MaxModelBytes).To(BeZero())
		Expect(config.Log.Level).To(Equal("info"))
		Expect(config.Server.Address).To(Equal(":8080"))
	})

	It("reads a yaml file", func() {
		file := writeFile("cargolp.yaml", `
naming: delimited
precision: 4
maxModelBytes: 1024
log:
  level: debug
  development: true
`)

		config, err := Load(New(), file)

		Expect(err).NotTo(HaveOccurred())
		Expect(config.Naming).To(Equal("delimited"))
		Expect(config.Precision).To(Equal(4))
		Expect(config.MaxModelBytes).To(Equal(1024))
		Expect(config.Log).To(Equal(LogConfig{Level: "debug", Development: true}))
	})

	It("reads a json file", func() {
		file := writeFile("cargolp.json", `{"precision": -1, "server": {"address": "127.0.0.1:9000"}}`)

		config, err := Load(New(), file)

		Expect(err).NotTo(HaveOccurred())
		Expect(config.Precision).To(Equal(-1))
		Expect(config.Server.Address).To(Equal("127.0.0.1:9000"))
	})

	It("lets the environment override the file", func() {
		file := writeFile("cargolp.yaml", "naming: compact\n")
		GinkgoT().Setenv("CARGOLP_NAMING", "delimited")
		GinkgoT().Setenv("CARGOLP_LOG_LEVEL", "warn")

		config, err := Load(New(), file)

		Expect(err).NotTo(HaveOccurred())
		Expect(config.Naming).To(Equal("delimited"))
		Expect(config.Log.Level).To(Equal("warn"))
	})

	It("fails on a missing file", func() {
		_, err := Load(New(), filepath.Join(directory, "missing.yaml"))

		Expect(err).To(MatchError(ContainSubstring("cannot read config file")))
	})

	It("reports every invalid value", func() {
		file := writeFile("cargolp.yaml", "naming: underscored\nprecision: -2\nmaxModelBytes: -1\n")

		_, err := Load(New(), file)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(And(
			ContainSubstring("underscored is not a valid naming"),
			ContainSubstring("precision must be >= -1"),
			ContainSubstring("maxModelBytes must be >= 0"),
		))
	})
})

var _ = Describe("GeneratorOptions", func() {
	It("maps the configuration onto the generator options", func() {
		config := Config{Naming: "delimited", Precision: 3, MaxModelBytes: 64, Server: ServerConfig{Address: ":1"}}
		Expect(config.Validate()).To(Succeed())

		options := config.GeneratorOptions()

		Expect(options.Naming).To(Equal(lp.NamingDelimited))
		Expect(options.Precision).To(Equal(3))
		Expect(options.MaxBytes).To(Equal(64))
	})
})
