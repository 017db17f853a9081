package libgl

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Cached binaries older than this are discarded, the driver may have been updated since
const shaderCacheExpiry = 30 * 24 * time.Hour

type shaderCacheManager struct {
	Dir      string
	Disabled bool
}

var ShaderCache = &shaderCacheManager{
	Dir: ".shadercache",
}

// CacheKey identifies a program binary by its sources and the driver that built it
func CacheKey(source string, driver ...string) string {
	hasher := md5.New()
	io.WriteString(hasher, source)
	for _, d := range driver {
		io.WriteString(hasher, d)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (cache *shaderCacheManager) path(source string) string {
	key := CacheKey(source,
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION)))
	return filepath.Join(cache.Dir, key+".bin")
}

func (cache *shaderCacheManager) Put(source string, program uint32) {
	if cache.Disabled {
		return
	}
	if err := os.MkdirAll(cache.Dir, 0755); err != nil {
		log.Printf("Could not create shader cache directory: %v\n", err)
		return
	}

	var length int32
	gl.GetProgramiv(program, gl.PROGRAM_BINARY_LENGTH, &length)
	if length == 0 {
		return
	}
	buf := make([]byte, length)
	var format uint32
	gl.GetProgramBinary(program, length, &length, &format, Pointer(buf))
	buf = buf[:length]

	file, err := os.OpenFile(cache.path(source), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Could not write shader cache: %v\n", err)
		return
	}
	defer file.Close()
	if err := binary.Write(file, binary.LittleEndian, format); err != nil {
		log.Printf("Could not write shader cache: %v\n", err)
		return
	}
	if _, err := file.Write(buf); err != nil {
		log.Printf("Could not write shader cache: %v\n", err)
	}
}

func (cache *shaderCacheManager) Get(source string) (ok bool, buf []byte, format uint32) {
	if cache.Disabled {
		return
	}
	var err error
	defer func() {
		if err != nil {
			log.Printf("Could not read shader cache: %v\n", err)
		}
	}()

	shaderPath := cache.path(source)
	info, err := os.Stat(shaderPath)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}
	if time.Since(info.ModTime()) > shaderCacheExpiry {
		os.Remove(shaderPath)
		return
	}

	file, err := os.Open(shaderPath)
	if err != nil {
		return
	}
	defer file.Close()
	if err = binary.Read(file, binary.LittleEndian, &format); err != nil {
		return
	}
	buf, err = io.ReadAll(file)
	if err != nil || len(buf) == 0 {
		return
	}
	return true, buf, format
}
