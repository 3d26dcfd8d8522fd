package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amparo-care/amparo/config"
)

var _ = Describe("Load", func() {
	var configPath string

	// Load reads AMPARO_* variables, so every test pins them to a known
	// state and restores the environment afterwards.
	setenv := func(key, value string) {
		previous, existed := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if existed {
				Expect(os.Setenv(key, previous)).To(Succeed())
			} else {
				Expect(os.Unsetenv(key)).To(Succeed())
			}
		})
	}

	writeConfig := func(content string) {
		Expect(os.WriteFile(configPath, []byte(content), 0o600)).To(Succeed())
	}

	BeforeEach(func() {
		configPath = filepath.Join(GinkgoT().TempDir(), "config.yaml")
		setenv("AMPARO_CONFIG", configPath)
		for _, key := range []string{"AMPARO_API_URL", "AMPARO_API_TIMEOUT", "AMPARO_SESSION_FILE", "AMPARO_NOTIFICATION_INTERVAL"} {
			setenv(key, "")
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	It("falls back to the embedded defaults", func() {
		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ApiUrl).To(Equal("http://localhost:3000"))
		Expect(cfg.ApiTimeout).To(Equal(10 * time.Second))
		Expect(cfg.NotificationInterval).To(Equal(30 * time.Second))
	})

	It("lets the user file override individual defaults", func() {
		writeConfig("api_url: https://amparo.example.com\n")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ApiUrl).To(Equal("https://amparo.example.com"))
		Expect(cfg.ApiTimeout).To(Equal(10 * time.Second))
	})

	It("lets the environment override the user file", func() {
		writeConfig("api_url: https://amparo.example.com\napi_timeout: 5s\n")
		setenv("AMPARO_API_URL", "https://staging.amparo.example.com")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ApiUrl).To(Equal("https://staging.amparo.example.com"))
		Expect(cfg.ApiTimeout).To(Equal(5 * time.Second))
	})

	It("parses durations from both layers", func() {
		writeConfig("notification_interval: 2m\n")
		setenv("AMPARO_API_TIMEOUT", "45s")

		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.NotificationInterval).To(Equal(2 * time.Minute))
		Expect(cfg.ApiTimeout).To(Equal(45 * time.Second))
	})

	It("ignores a missing user file", func() {
		cfg, err := config.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.ApiUrl).To(Equal("http://localhost:3000"))
	})

	It("rejects files that are not valid yaml", func() {
		writeConfig("api_url: [unclosed\n")

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})
