package cmd

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/radsim/roadstyle/element"
)

func (a *app) backmapCmd() *cobra.Command {
	var tagsFile string
	var set []string
	cmd := &cobra.Command{
		Use:   "backmap [--tags file.yml] [key=value ...] --set radsimkey=value",
		Short: "Print the OSM tag changes for edited RadSim attributes",
		Long: "Prints the OSM tag changes required to set RadSim attributes of a way.\n" +
			"Removed tags are printed with a null value.",
		Example: "  radsim backmap highway=secondary cycleway:right=lane --set roadStyleSimplified=BicycleWay",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := readTags(tagsFile, args)
			if err != nil {
				return err
			}
			if len(set) == 0 {
				return errors.New("nothing to --set")
			}
			translator := newTranslator()
			delta := element.Delta{}
			for _, kv := range set {
				key, value, err := splitKeyValue(kv)
				if err != nil {
					return err
				}
				d, err := translator.ComputeDelta(tags, key, value)
				if err != nil {
					return err
				}
				delta = delta.Merge(d)
			}
			b, err := yaml.Marshal(deltaYAML(delta))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&tagsFile, "tags", "", "YAML file with the OSM tags of the way")
	cmd.Flags().StringArrayVar(&set, "set", nil, "RadSim attribute to set (key=value), repeatable")
	return cmd
}

// readTags reads tags from a YAML mapping in fname and from key=value
// args. Args take precedence.
func readTags(fname string, args []string) (element.Tags, error) {
	tags := element.Tags{}
	if fname != "" {
		b, err := ioutil.ReadFile(fname)
		if err != nil {
			return nil, errors.Wrapf(err, "reading tags %s", fname)
		}
		if err := yaml.Unmarshal(b, &tags); err != nil {
			return nil, errors.Wrapf(err, "parsing tags %s", fname)
		}
	}
	for _, arg := range args {
		k, v, err := splitKeyValue(arg)
		if err != nil {
			return nil, err
		}
		tags[k] = v
	}
	return tags, nil
}

func splitKeyValue(kv string) (string, string, error) {
	parts := strings.SplitN(kv, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", errors.Errorf("expected key=value, got %q", kv)
	}
	return parts[0], parts[1], nil
}

// deltaYAML converts removals to nil, so that they are marshaled as null.
func deltaYAML(d element.Delta) map[string]interface{} {
	m := make(map[string]interface{}, len(d))
	for k, v := range d {
		if v == "" {
			m[k] = nil
		} else {
			m[k] = v
		}
	}
	return m
}
