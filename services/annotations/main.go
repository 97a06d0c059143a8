package annotationsService

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"varscanner/api/metrics"
	"varscanner/api/models"
	"varscanner/api/models/constants/chromosome"
	"varscanner/api/models/dtos"
	"varscanner/api/utils"

	"github.com/Jeffail/gabs"
	linq "github.com/ahmetb/go-linq"
	"github.com/cenkalti/backoff"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
	"golang.org/x/sync/errgroup"
)

var permittedResourceExtensions = []string{".json", ".yml", ".yaml"}

type (
	// AnnotationService holds the static variant-key -> annotation
	// table, loaded once at startup and read-only thereafter
	AnnotationService struct {
		Config *models.Config
		store  map[string]models.Annotation
	}
)

func NewAnnotationService(cfg *models.Config) (*AnnotationService, error) {
	as := &AnnotationService{
		Config: cfg,
		store:  map[string]models.Annotation{},
	}

	store, err := loadAnnotationResource(cfg.Api.AnnotationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load annotation resource '%s' : %v", cfg.Api.AnnotationsPath, err)
	}
	as.store = store

	fmt.Printf("Annotation store loaded : %d entries from %s\n", len(as.store), cfg.Api.AnnotationsPath)

	return as, nil
}

// Lookup returns the stored annotation for a canonical variant key.
// An absent key is an expected state, not an error.
func (as *AnnotationService) Lookup(key string) (models.Annotation, bool) {
	annotation, found := as.store[key]
	return annotation, found
}

// Resolve annotates each incoming variant in order ; variants absent
// from the store resolve to an all-null annotation rather than an error
func (as *AnnotationService) Resolve(variants []models.Variant) []dtos.VariantResultDto {
	results := make([]dtos.VariantResultDto, 0, len(variants))

	for _, variant := range variants {
		key := variant.Key()

		annotation, found := as.Lookup(key)
		if found {
			metrics.AnnotationHits.Inc()
		} else {
			// leave the annotation zero-valued (all fields null)
			metrics.AnnotationMisses.Inc()
		}

		results = append(results, dtos.VariantResultDto{
			VariantKey:  key,
			Echo:        variant,
			Gene:        annotation.Gene,
			Consequence: annotation.Consequence,
			GnomadAf:    annotation.GnomadAf,
			Rsid:        annotation.Rsid,
			Clinvar:     annotation.Clinvar,
		})
	}

	return results
}

// StoreSize reports the number of loaded annotation entries
func (as *AnnotationService) StoreSize() int {
	return len(as.store)
}

// ---- resource loading (runs once, before the server accepts traffic)

func loadAnnotationResource(resourcePath string) (map[string]models.Annotation, error) {
	// remote resources are fetched once with a bounded retry ;
	// local paths fail immediately
	if strings.HasPrefix(resourcePath, "http://") || strings.HasPrefix(resourcePath, "https://") {
		return loadFromUrl(resourcePath)
	}

	info, statErr := os.Stat(resourcePath)
	if statErr != nil {
		return nil, statErr
	}

	if info.IsDir() {
		return loadFromDirectory(resourcePath)
	}

	return loadFromFile(resourcePath)
}

func loadFromFile(fileName string) (map[string]models.Annotation, error) {
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return parseAnnotationResource(contents, filepath.Ext(fileName))
}

func loadFromDirectory(dirName string) (map[string]models.Annotation, error) {
	entries, err := os.ReadDir(dirName)
	if err != nil {
		return nil, err
	}

	var fileNames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if utils.StringInSlice(filepath.Ext(entry.Name()), permittedResourceExtensions) {
			fileNames = append(fileNames, entry.Name())
		} else {
			fmt.Printf("Skipping %s\n", entry.Name())
		}
	}
	if len(fileNames) == 0 {
		return nil, fmt.Errorf("no annotation files found in directory '%s'", dirName)
	}

	// load all files concurrently, then merge in lexical filename
	// order so that later files win on duplicate keys
	sort.Strings(fileNames)

	var (
		g          errgroup.Group
		partialMux sync.Mutex
		partials   = make(map[string]map[string]models.Annotation, len(fileNames))
	)
	for _, fileName := range fileNames {
		fileName := fileName
		g.Go(func() error {
			partial, loadErr := loadFromFile(filepath.Join(dirName, fileName))
			if loadErr != nil {
				return loadErr
			}

			partialMux.Lock()
			partials[fileName] = partial
			partialMux.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := map[string]models.Annotation{}
	for _, fileName := range fileNames {
		for key, annotation := range partials[fileName] {
			merged[key] = annotation
		}
	}

	return merged, nil
}

func loadFromUrl(resourceUrl string) (map[string]models.Annotation, error) {
	var (
		contents     []byte
		retryBackoff = backoff.NewExponentialBackOff()
	)

	operation := func() error {
		response, responseErr := http.Get(resourceUrl)
		if responseErr != nil {
			return responseErr
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %s fetching '%s'", response.Status, resourceUrl)
		}

		body, readErr := io.ReadAll(response.Body)
		if readErr != nil {
			return readErr
		}

		contents = body
		return nil
	}

	// Retry up to 5 attempts
	if err := backoff.Retry(operation, backoff.WithMaxRetries(retryBackoff, 5)); err != nil {
		return nil, err
	}

	extension := ".json"
	if parsedUrl, parseErr := url.Parse(resourceUrl); parseErr == nil {
		if urlExtension := path.Ext(parsedUrl.Path); urlExtension != "" {
			extension = urlExtension
		}
	}

	return parseAnnotationResource(contents, extension)
}

func parseAnnotationResource(contents []byte, extension string) (map[string]models.Annotation, error) {
	var rawEntries map[string]interface{}

	switch strings.ToLower(extension) {
	case ".yml", ".yaml":
		var yamlEntries map[string]map[string]interface{}
		if err := yaml.Unmarshal(contents, &yamlEntries); err != nil {
			return nil, err
		}
		rawEntries = make(map[string]interface{}, len(yamlEntries))
		for key, entry := range yamlEntries {
			rawEntries[key] = entry
		}
	default:
		// default to json for unrecognized extensions
		container, parseErr := gabs.ParseJSON(contents)
		if parseErr != nil {
			return nil, parseErr
		}

		children, childrenErr := container.ChildrenMap()
		if childrenErr != nil {
			return nil, childrenErr
		}

		rawEntries = make(map[string]interface{}, len(children))
		for key, child := range children {
			rawEntries[key] = child.Data()
		}
	}

	store := make(map[string]models.Annotation, len(rawEntries))
	for key, rawEntry := range rawEntries {
		var annotation models.Annotation
		if decodeErr := mapstructure.Decode(rawEntry, &annotation); decodeErr != nil {
			return nil, fmt.Errorf("malformed annotation entry '%s' : %v", key, decodeErr)
		}
		store[key] = annotation
	}

	return store, nil
}

// ---- overview

// Overview aggregates distributions accross the loaded store :
// counts by gene, by clinical significance, and by chromosome
func (as *AnnotationService) Overview() map[string]interface{} {
	type storeEntry struct {
		Key        string
		Annotation models.Annotation
	}

	entries := make([]storeEntry, 0, len(as.store))
	for key, annotation := range as.store {
		entries = append(entries, storeEntry{Key: key, Annotation: annotation})
	}

	countByKey := func(keySelector func(storeEntry) string) map[string]interface{} {
		var groups []linq.Group
		linq.From(entries).GroupByT(
			keySelector,
			func(e storeEntry) storeEntry { return e },
		).ToSlice(&groups)

		counts := map[string]interface{}{}
		for _, group := range groups {
			counts[fmt.Sprint(group.Key)] = len(group.Group)
		}
		return counts
	}

	chromosomeOf := func(e storeEntry) string {
		if separator := strings.Index(e.Key, ":"); separator > 0 {
			return e.Key[:separator]
		}
		return "?"
	}

	invalidChromosomes := []string{}
	for chrom := range countByKey(chromosomeOf) {
		if !chromosome.IsValidHumanChromosome(chrom) {
			invalidChromosomes = append(invalidChromosomes, chrom)
		}
	}
	sort.Strings(invalidChromosomes)

	return map[string]interface{}{
		"totalKeys":          len(as.store),
		"genes":              countByKey(func(e storeEntry) string { return stringOrNone(e.Annotation.Gene) }),
		"clinvar":            countByKey(func(e storeEntry) string { return stringOrNone(e.Annotation.Clinvar) }),
		"chromosomes":        countByKey(chromosomeOf),
		"invalidChromosomes": invalidChromosomes,
	}
}

func stringOrNone(value *string) string {
	if value == nil {
		return "none"
	}
	return *value
}
