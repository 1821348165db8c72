package internal

// JumpHash maps key to a bucket in [0, numBuckets) with Lamping and Veach's
// jump consistent hash (https://arxiv.org/abs/1406.2294). Growing the
// bucket count from n to n+1 moves only 1/(n+1) of the keys.
// Copied from: https://github.com/dgryski/go-jump
func JumpHash(key uint64, numBuckets int) int {
	if numBuckets <= 0 {
		return 0
	}

	bucket, next := int64(-1), int64(0)
	for next < int64(numBuckets) {
		bucket = next
		key = key*2862933555777941757 + 1
		next = int64(float64(bucket+1) * (float64(int64(1)<<31) / float64((key>>33)+1)))
	}

	return int(bucket)
}
