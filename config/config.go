package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultTimeFormat = "2006-01-02 15:04:05.000"

type Properties struct {
	LogLevel      string `cfg:"loglevel"`
	LogPath       string `cfg:"logpath"`
	EnableFileLog bool   `cfg:"enablefilelog"`
	TimeFormat    string `cfg:"timeformat"`
	// Script yaml 格式的操作脚本, 为空时执行默认脚本
	Script string `cfg:"script"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

func Default() *Properties {
	return &Properties{
		LogLevel:   "info",
		LogPath:    "./logs",
		TimeFormat: defaultTimeFormat,
	}
}

// Level 解析 loglevel, 解析失败时使用 info
func (p *Properties) Level() logrus.Level {
	level, err := logrus.ParseLevel(p.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// parse 读取 `key value` 格式的配置, 只覆盖文件中出现的字段
func parse(src io.Reader, config *Properties) error {
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read config")
	}

	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				fieldVal.Set(reflect.ValueOf(strings.Split(value, ",")))
			}
		}
	}
	return nil
}

// SetUpConfig 加载配置文件, filename 为空时返回默认配置
func SetUpConfig(filename string) (*Properties, error) {
	properties := Default()
	if filename == "" {
		return properties, nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %s", filename)
	}
	defer file.Close()
	if err = parse(file, properties); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}
	configFilePath, err := filepath.Abs(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "config path %s", filename)
	}
	properties.CfPath = configFilePath
	if properties.TimeFormat == "" {
		properties.TimeFormat = defaultTimeFormat
	}
	// script 相对于配置文件所在目录
	if properties.Script != "" && !filepath.IsAbs(properties.Script) {
		properties.Script = filepath.Join(filepath.Dir(configFilePath), properties.Script)
	}
	return properties, nil
}
