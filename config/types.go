package config

// City maps a city name, as typed at the prompt, to its trip CSV file
type City struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// BrowserConfig contains row browser configuration
type BrowserConfig struct {
	PageSize int `yaml:"page_size" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	DataDir string        `yaml:"data_dir"`
	Cities  []City        `yaml:"cities" validate:"required,min=1,dive"`
	Browser BrowserConfig `yaml:"browser"`
}

// CityNames returns the configured city names in declaration order
func (c AppConfig) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}

// CityFiles returns the city name -> file table handed to the trip loader
func (c AppConfig) CityFiles() map[string]string {
	files := make(map[string]string, len(c.Cities))
	for _, city := range c.Cities {
		files[city.Name] = city.File
	}
	return files
}
