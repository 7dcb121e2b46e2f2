// Package imagefile acquires still images from the filesystem: decode
// JPEG or PNG, downscale to capture resolution, re-encode as JPEG for
// the estimator and for thumbnail storage.
package imagefile
